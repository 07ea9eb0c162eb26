// Package predicates holds the built-in node behaviors: the concrete
// Predicate implementations a semantics.Node can be constructed with or
// replaced into, and the connective constructors and assertion entry
// points that wire them together.
package predicates

import "github.com/lattice-logic/folgraph/semantics"

// Undetermined is the behavior that knows nothing: every query answers
// semantics.Undetermined and both evidence lists are empty. It is the
// behavior a caller explicitly installs with Replace to reset a node, as
// opposed to the one semantics.NewNode installs by default.
type Undetermined[E comparable] struct{}

func (Undetermined[E]) CallForElements(semantics.Arguments[semantics.Quantifier[E]], *semantics.Signature) semantics.TruthValue {
	return semantics.Undetermined
}

func (Undetermined[E]) GetElementsForTrue(*semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	return nil
}

func (Undetermined[E]) GetElementsForFalse(*semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	return nil
}
