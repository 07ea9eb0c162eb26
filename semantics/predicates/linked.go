package predicates

import "github.com/lattice-logic/folgraph/semantics"

// LinkedPredicate forwards every operation to a held inner behavior,
// unconditionally. Installing it as a node's behavior asserts a one-way
// equivalence: queries against the node become queries against linked.
// A two-way equivalence is obtained by installing one on each side.
type LinkedPredicate[E comparable] struct {
	linked semantics.Predicate[E]
}

// NewLinkedPredicate wraps linked.
func NewLinkedPredicate[E comparable](linked semantics.Predicate[E]) LinkedPredicate[E] {
	return LinkedPredicate[E]{linked: linked}
}

func (b LinkedPredicate[E]) CallForElements(a semantics.Arguments[semantics.Quantifier[E]], sig *semantics.Signature) semantics.TruthValue {
	return b.linked.CallForElements(a, sig)
}

func (b LinkedPredicate[E]) GetElementsForTrue(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	return b.linked.GetElementsForTrue(sig)
}

func (b LinkedPredicate[E]) GetElementsForFalse(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	return b.linked.GetElementsForFalse(sig)
}
