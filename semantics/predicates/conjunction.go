package predicates

import "github.com/lattice-logic/folgraph/semantics"

// Conjunction is the behavior of a composite node built by CreateConjunction:
// "left ∧ right", the de Morgan dual of Disjunction.
type Conjunction[E comparable] struct {
	left, right       *semantics.Node[E]
	mapLeft, mapRight semantics.ArgumentMap
	sig               semantics.Token
}

func (b Conjunction[E]) CallForElements(a semantics.Arguments[semantics.Quantifier[E]], sig *semantics.Signature) semantics.TruthValue {
	if sig.Contains(b.sig) {
		return semantics.Undetermined
	}
	sig.Push(b.sig)
	aL := semantics.Forward(b.mapLeft, a)
	aR := semantics.Forward(b.mapRight, a)
	return semantics.And(b.left.CallForElements(aL, sig), b.right.CallForElements(aR, sig))
}

func (b Conjunction[E]) GetElementsForTrue(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return nil
	}
	sig.Push(b.sig)

	leftTrues := liftBackward(b.mapLeft, b.left.GetElementsForTrue(sig), semantics.ElementSet[E].Union)
	rightTrues := liftBackward(b.mapRight, b.right.GetElementsForTrue(sig), semantics.ElementSet[E].Union)

	return crossJoin(leftTrues, rightTrues, semantics.IntersectArguments[E])
}

func (b Conjunction[E]) GetElementsForFalse(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return nil
	}
	sig.Push(b.sig)

	leftFalses := liftBackward(b.mapLeft, b.left.GetElementsForFalse(sig), semantics.ElementSet[E].Intersect)
	rightFalses := liftBackward(b.mapRight, b.right.GetElementsForFalse(sig), semantics.ElementSet[E].Intersect)

	return crossJoin(leftFalses, rightFalses, semantics.UnionArguments[E])
}

// IsConjunctionPart is the back-link CreateConjunction installs inside each
// operand, dual to IsDisjunctionPart.
type IsConjunctionPart[E comparable] struct {
	composite         *semantics.Node[E]
	other             *semantics.Node[E]
	mapThis, mapOther semantics.ArgumentMap
	inner             semantics.Predicate[E]
	sig               semantics.Token
}

func (b IsConjunctionPart[E]) CallForElements(a semantics.Arguments[semantics.Quantifier[E]], sig *semantics.Signature) semantics.TruthValue {
	if sig.Contains(b.sig) {
		return b.inner.CallForElements(a, sig)
	}
	sig.Push(b.sig)

	aC := semantics.Backward(b.mapThis, a, semantics.AnyElement[E](), semantics.QuantifierMerge[E])
	aOther := semantics.Forward(b.mapOther, aC)

	composite := b.composite.CallForElements(aC, sig)
	sibling := b.other.CallForElements(aOther, sig)

	switch {
	case composite.IsTrue():
		return semantics.Determined(true)
	case composite.IsFalse() && sibling.IsTrue():
		return semantics.Determined(false)
	default:
		return semantics.Undetermined
	}
}

func (b IsConjunctionPart[E]) GetElementsForFalse(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return b.inner.GetElementsForFalse(sig)
	}
	sig.Push(b.sig)

	compositeFalse := forwardAll(b.mapThis, b.composite.GetElementsForFalse(sig))
	siblingTrue := forwardAll(b.mapThis, liftBackward(b.mapOther, b.other.GetElementsForTrue(sig), semantics.ElementSet[E].Union))

	out := crossJoin(compositeFalse, siblingTrue, semantics.IntersectArguments[E])
	return append(out, b.inner.GetElementsForFalse(sig)...)
}

func (b IsConjunctionPart[E]) GetElementsForTrue(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return b.inner.GetElementsForTrue(sig)
	}
	sig.Push(b.sig)

	out := forwardAll(b.mapThis, b.composite.GetElementsForTrue(sig))
	return append(out, b.inner.GetElementsForTrue(sig)...)
}

// CreateConjunction builds a composite node for left ∧ right, related to
// each operand by the given argument map, and installs an
// IsConjunctionPart back-link inside each operand.
func CreateConjunction[E comparable](left *semantics.Node[E], mapLeft semantics.ArgumentMap, right *semantics.Node[E], mapRight semantics.ArgumentMap) *semantics.Node[E] {
	sig := semantics.DefaultTokenSource.Next()
	composite := semantics.NewNodeWithBehavior[E](mapLeft.From(), Conjunction[E]{
		left: left, right: right, mapLeft: mapLeft, mapRight: mapRight, sig: sig,
	})

	left.Replace(func(inner semantics.Predicate[E]) semantics.Predicate[E] {
		return IsConjunctionPart[E]{composite: composite, other: right, mapThis: mapLeft, mapOther: mapRight, inner: inner, sig: sig}
	})
	right.Replace(func(inner semantics.Predicate[E]) semantics.Predicate[E] {
		return IsConjunctionPart[E]{composite: composite, other: left, mapThis: mapRight, mapOther: mapLeft, inner: inner, sig: sig}
	})

	return composite
}
