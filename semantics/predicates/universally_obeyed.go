package predicates

import "github.com/lattice-logic/folgraph/semantics"

// UniversallyObeyed is the behavior asserting a predicate holds for every
// combination of elements: "for all x, P(x)".
type UniversallyObeyed[E comparable] struct {
	arity int
}

// NewUniversallyObeyed returns the behavior for a node of the given arity.
func NewUniversallyObeyed[E comparable](arity int) UniversallyObeyed[E] {
	return UniversallyObeyed[E]{arity: arity}
}

func (b UniversallyObeyed[E]) CallForElements(semantics.Arguments[semantics.Quantifier[E]], *semantics.Signature) semantics.TruthValue {
	return semantics.Determined(true)
}

func (b UniversallyObeyed[E]) GetElementsForTrue(*semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	return []semantics.Arguments[semantics.ElementSet[E]]{
		semantics.Every[semantics.ElementSet[E]](semantics.AllElements[E](), b.arity),
	}
}

func (b UniversallyObeyed[E]) GetElementsForFalse(*semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	return []semantics.Arguments[semantics.ElementSet[E]]{
		semantics.Every[semantics.ElementSet[E]](semantics.NoElements[E](), b.arity),
	}
}

// AssertOnUniversallyObeyed asserts that node holds for every tuple of
// elements. It checks the node's current false-evidence for a
// counterexample before committing, and its true-evidence for an
// already-maximal witness before reporting redundancy.
func AssertOnUniversallyObeyed[E comparable](node *semantics.Node[E]) semantics.AssertionResponse {
	sig := semantics.NewSignature()
	for _, tuple := range node.GetElementsForFalse(sig) {
		if semantics.Exists(tuple) {
			return semantics.AssertionInvalid
		}
	}

	sig = semantics.NewSignature()
	for _, tuple := range node.GetElementsForTrue(sig) {
		if semantics.Maximal(tuple) {
			return semantics.AssertionRedundant
		}
	}

	node.Replace(func(semantics.Predicate[E]) semantics.Predicate[E] {
		return NewUniversallyObeyed[E](node.Arity())
	})
	return semantics.AssertionMade
}

// universallyObeyedUnchecked installs UniversallyObeyed directly, skipping
// the contradiction/redundancy checks AssertOnUniversallyObeyed performs.
// A plausible caller would be a constructor whose consistency is already
// proven some other way, but no such caller exists yet, so this is kept
// unexported and unused rather than inventing one.
func universallyObeyedUnchecked[E comparable](node *semantics.Node[E]) semantics.AssertionResponse {
	node.Replace(func(semantics.Predicate[E]) semantics.Predicate[E] {
		return NewUniversallyObeyed[E](node.Arity())
	})
	return semantics.AssertionMade
}
