package predicates

import "github.com/lattice-logic/folgraph/semantics"

// Negation is the behavior of a node built by CreateNegation: it answers
// the logical negation of another node (of), and is cycle-safe against the
// back-link CreateNegation installs inside of.
type Negation[E comparable] struct {
	of  *semantics.Node[E]
	sig semantics.Token
}

func (b Negation[E]) CallForElements(a semantics.Arguments[semantics.Quantifier[E]], sig *semantics.Signature) semantics.TruthValue {
	if sig.Contains(b.sig) {
		return semantics.Undetermined
	}
	sig.Push(b.sig)
	return semantics.Not(b.of.CallForElements(a, sig))
}

func (b Negation[E]) GetElementsForTrue(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return nil
	}
	sig.Push(b.sig)
	return b.of.GetElementsForFalse(sig)
}

func (b Negation[E]) GetElementsForFalse(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return nil
	}
	sig.Push(b.sig)
	return b.of.GetElementsForTrue(sig)
}

// IsNegated is the back-link CreateNegation installs inside the negated
// node: it lets an assertion posted on the negation node later inform
// queries against the original node, which is the whole point of building
// the negation in the first place.
type IsNegated[E comparable] struct {
	negation *semantics.Node[E]
	inner    semantics.Predicate[E]
	sig      semantics.Token
}

func (b IsNegated[E]) CallForElements(a semantics.Arguments[semantics.Quantifier[E]], sig *semantics.Signature) semantics.TruthValue {
	if sig.Contains(b.sig) {
		return b.inner.CallForElements(a, sig)
	}
	sig.Push(b.sig)
	if v, ok := b.negation.CallForElements(a, sig).IsDetermined(); ok {
		return semantics.Determined(!v)
	}
	return b.inner.CallForElements(a, sig)
}

func (b IsNegated[E]) GetElementsForTrue(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return b.inner.GetElementsForTrue(sig)
	}
	sig.Push(b.sig)
	out := b.negation.GetElementsForFalse(sig)
	return append(out, b.inner.GetElementsForTrue(sig)...)
}

func (b IsNegated[E]) GetElementsForFalse(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	if sig.Contains(b.sig) {
		return b.inner.GetElementsForFalse(sig)
	}
	sig.Push(b.sig)
	out := b.negation.GetElementsForTrue(sig)
	return append(out, b.inner.GetElementsForFalse(sig)...)
}

// CreateNegation draws a fresh traversal token, builds a new node holding
// Negation{of}, and wraps of's current behavior with IsNegated so that
// later assertions on the negation propagate back to of.
func CreateNegation[E comparable](of *semantics.Node[E]) *semantics.Node[E] {
	sig := semantics.DefaultTokenSource.Next()
	negation := semantics.NewNodeWithBehavior[E](of.Arity(), Negation[E]{of: of, sig: sig})
	of.Replace(func(prev semantics.Predicate[E]) semantics.Predicate[E] {
		return IsNegated[E]{negation: negation, inner: prev, sig: sig}
	})
	return negation
}
