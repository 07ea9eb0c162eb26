package predicates

import "github.com/lattice-logic/folgraph/semantics"

// Disjunction is the behavior of a composite node built by CreateDisjunction:
// "left ∨ right", related to its operands by one argument map per side.
type Disjunction[E comparable] struct {
	left, right       *semantics.Node[E]
	mapLeft, mapRight semantics.ArgumentMap
	sig               semantics.Token
}

func (b Disjunction[E]) CallForElements(a semantics.Arguments[semantics.Quantifier[E]], sig *semantics.Signature) semantics.TruthValue {
	if sig.Contains(b.sig) {
		return semantics.Undetermined
	}
	sig.Push(b.sig)
	aL := semantics.Forward(b.mapLeft, a)
	aR := semantics.Forward(b.mapRight, a)
	return semantics.Or(b.left.CallForElements(aL, sig), b.right.CallForElements(aR, sig))
}

func (b Disjunction[E]) GetElementsForTrue(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return nil
	}
	sig.Push(b.sig)

	leftTrues := liftBackward(b.mapLeft, b.left.GetElementsForTrue(sig), semantics.ElementSet[E].Union)
	rightTrues := liftBackward(b.mapRight, b.right.GetElementsForTrue(sig), semantics.ElementSet[E].Union)

	return crossJoin(leftTrues, rightTrues, semantics.UnionArguments[E])
}

func (b Disjunction[E]) GetElementsForFalse(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return nil
	}
	sig.Push(b.sig)

	leftFalses := liftBackward(b.mapLeft, b.left.GetElementsForFalse(sig), semantics.ElementSet[E].Intersect)
	rightFalses := liftBackward(b.mapRight, b.right.GetElementsForFalse(sig), semantics.ElementSet[E].Intersect)

	return crossJoin(leftFalses, rightFalses, semantics.IntersectArguments[E])
}

// IsDisjunctionPart is the back-link CreateDisjunction installs inside each
// operand: the mechanism by which an assertion posted on the composite (or
// derived from the sibling being false) reaches queries against this
// operand.
type IsDisjunctionPart[E comparable] struct {
	composite         *semantics.Node[E]
	other             *semantics.Node[E]
	mapThis, mapOther semantics.ArgumentMap
	inner             semantics.Predicate[E]
	sig               semantics.Token
}

func (b IsDisjunctionPart[E]) CallForElements(a semantics.Arguments[semantics.Quantifier[E]], sig *semantics.Signature) semantics.TruthValue {
	if sig.Contains(b.sig) {
		return b.inner.CallForElements(a, sig)
	}
	sig.Push(b.sig)

	aC := semantics.Backward(b.mapThis, a, semantics.AnyElement[E](), semantics.QuantifierMerge[E])
	aOther := semantics.Forward(b.mapOther, aC)

	composite := b.composite.CallForElements(aC, sig)
	sibling := b.other.CallForElements(aOther, sig)

	switch {
	case composite.IsFalse():
		return semantics.Determined(false)
	case composite.IsTrue() && sibling.IsFalse():
		return semantics.Determined(true)
	default:
		return semantics.Undetermined
	}
}

func (b IsDisjunctionPart[E]) GetElementsForFalse(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return b.inner.GetElementsForFalse(sig)
	}
	sig.Push(b.sig)

	out := forwardAll(b.mapThis, b.composite.GetElementsForFalse(sig))
	return append(out, b.inner.GetElementsForFalse(sig)...)
}

func (b IsDisjunctionPart[E]) GetElementsForTrue(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return b.inner.GetElementsForTrue(sig)
	}
	sig.Push(b.sig)

	compositeTrue := forwardAll(b.mapThis, b.composite.GetElementsForTrue(sig))
	siblingFalse := forwardAll(b.mapThis, liftBackward(b.mapOther, b.other.GetElementsForFalse(sig), semantics.ElementSet[E].Intersect))

	out := crossJoin(compositeTrue, siblingFalse, semantics.IntersectArguments[E])
	return append(out, b.inner.GetElementsForTrue(sig)...)
}

// CreateDisjunction builds a composite node for left ∨ right, related to
// each operand by the given argument map, and installs an
// IsDisjunctionPart back-link inside each operand.
func CreateDisjunction[E comparable](left *semantics.Node[E], mapLeft semantics.ArgumentMap, right *semantics.Node[E], mapRight semantics.ArgumentMap) *semantics.Node[E] {
	sig := semantics.DefaultTokenSource.Next()
	composite := semantics.NewNodeWithBehavior[E](mapLeft.From(), Disjunction[E]{
		left: left, right: right, mapLeft: mapLeft, mapRight: mapRight, sig: sig,
	})

	left.Replace(func(inner semantics.Predicate[E]) semantics.Predicate[E] {
		return IsDisjunctionPart[E]{composite: composite, other: right, mapThis: mapLeft, mapOther: mapRight, inner: inner, sig: sig}
	})
	right.Replace(func(inner semantics.Predicate[E]) semantics.Predicate[E] {
		return IsDisjunctionPart[E]{composite: composite, other: left, mapThis: mapRight, mapOther: mapLeft, inner: inner, sig: sig}
	})

	return composite
}

// liftBackward projects every operand-shaped evidence tuple in tuples back
// into composite shape via m, folding any positions fed by more than one
// target index together with merge.
func liftBackward[E comparable](m semantics.ArgumentMap, tuples []semantics.Arguments[semantics.ElementSet[E]], merge func(semantics.ElementSet[E], semantics.ElementSet[E]) semantics.ElementSet[E]) []semantics.Arguments[semantics.ElementSet[E]] {
	out := make([]semantics.Arguments[semantics.ElementSet[E]], len(tuples))
	for i, t := range tuples {
		out[i] = semantics.Backward(m, t, semantics.AllElements[E](), merge)
	}
	return out
}

// forwardAll projects every composite-shaped evidence tuple in tuples down
// into operand shape via m.
func forwardAll[E comparable](m semantics.ArgumentMap, tuples []semantics.Arguments[semantics.ElementSet[E]]) []semantics.Arguments[semantics.ElementSet[E]] {
	out := make([]semantics.Arguments[semantics.ElementSet[E]], len(tuples))
	for i, t := range tuples {
		out[i] = semantics.Forward(m, t)
	}
	return out
}

// crossJoin combines every pair from a and b with combine, in a-major,
// b-minor order.
func crossJoin[E comparable](a, b []semantics.Arguments[semantics.ElementSet[E]], combine func(semantics.Arguments[semantics.ElementSet[E]], semantics.Arguments[semantics.ElementSet[E]]) semantics.Arguments[semantics.ElementSet[E]]) []semantics.Arguments[semantics.ElementSet[E]] {
	out := make([]semantics.Arguments[semantics.ElementSet[E]], 0, len(a)*len(b))
	for _, l := range a {
		for _, r := range b {
			out = append(out, combine(l, r))
		}
	}
	return out
}
