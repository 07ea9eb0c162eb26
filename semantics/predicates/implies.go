package predicates

import "github.com/lattice-logic/folgraph/semantics"

// Implies asserts left → right, via the tautology left → right ≡ ¬left ∨ right:
// it builds ¬left, disjoins it with right using the identity map on both
// sides, and asserts the disjunction universally obeyed. left and right
// must share an arity.
func Implies[E comparable](left, right *semantics.Node[E]) semantics.AssertionResponse {
	identity := semantics.OneToOne(left.Arity())
	implication := CreateDisjunction(CreateNegation(left), identity, right, identity)
	return AssertOnUniversallyObeyed(implication)
}
