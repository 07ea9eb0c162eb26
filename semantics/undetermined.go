package semantics

import "fmt"

// undeterminedBehavior is the zero behavior every freshly constructed Node
// starts with: it knows nothing, so every query is Undetermined and it
// offers no evidence in either polarity. It is unexported because callers
// reach it only through NewNode's default; the exported, composable form a
// caller can Replace back to explicitly lives in the predicates package.
type undeterminedBehavior[E comparable] struct{}

func (undeterminedBehavior[E]) CallForElements(Arguments[Quantifier[E]], *Signature) TruthValue {
	return Undetermined
}

func (undeterminedBehavior[E]) GetElementsForTrue(*Signature) []Arguments[ElementSet[E]] {
	return nil
}

func (undeterminedBehavior[E]) GetElementsForFalse(*Signature) []Arguments[ElementSet[E]] {
	return nil
}

// behaviorTypeName labels a behavior's dynamic type for tracing.
func behaviorTypeName[E comparable](b Predicate[E]) string {
	return fmt.Sprintf("%T", b)
}
