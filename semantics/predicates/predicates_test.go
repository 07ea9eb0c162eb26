package predicates

import (
	"testing"
	"time"

	"github.com/lattice-logic/folgraph/semantics"
)

// Seed test 1: a default node answers Undetermined with no evidence.
func TestDefaultNode(t *testing.T) {
	n := semantics.NewNode[int](1)
	if got := n.CallForElements(semantics.NewArguments(semantics.One(4)), semantics.NewSignature()); got != semantics.Undetermined {
		t.Errorf("n.call(One(4)) = %v, want Undetermined", got)
	}
	if len(n.GetElementsForTrue(semantics.NewSignature())) != 0 {
		t.Error("default node has non-empty true-evidence")
	}
	if len(n.GetElementsForFalse(semantics.NewSignature())) != 0 {
		t.Error("default node has non-empty false-evidence")
	}
}

// Seed test 2: UniversallyObeyed makes, then re-asserting is redundant.
func TestUniversallyObeyedAssertThenReassert(t *testing.T) {
	n := semantics.NewNode[int](1)

	if got := AssertOnUniversallyObeyed(n); got != semantics.AssertionMade {
		t.Fatalf("first assert = %v, want AssertionMade", got)
	}
	if got := n.CallForElements(semantics.NewArguments(semantics.One(4)), semantics.NewSignature()); got != semantics.Determined(true) {
		t.Errorf("n.call(One(4)) = %v, want Determined(true)", got)
	}
	if got := AssertOnUniversallyObeyed(n); got != semantics.AssertionRedundant {
		t.Errorf("second assert = %v, want AssertionRedundant", got)
	}
}

// Asserting UniversallyObeyed is AssertionInvalid iff false-evidence exists.
func TestUniversallyObeyedRejectsContradiction(t *testing.T) {
	n := semantics.NewNode[int](1)
	if got := AssertOnTrueForArguments(CreateNegation(n), []semantics.Arguments[semantics.Quantifier[int]]{
		semantics.NewArguments(semantics.One(4)),
	}); got != semantics.AssertionMade {
		t.Fatalf("asserting ¬n(4) = %v, want AssertionMade", got)
	}
	if got := AssertOnUniversallyObeyed(n); got != semantics.AssertionInvalid {
		t.Errorf("AssertOnUniversallyObeyed after ¬n(4) = %v, want AssertionInvalid", got)
	}
}

// Seed test 3: TrueForArguments asserts specific tuples only.
func TestTrueForArgumentsAssertsOnlyListedTuples(t *testing.T) {
	p := semantics.NewNode[int](2)
	known := []semantics.Arguments[semantics.Quantifier[int]]{
		semantics.NewArguments(semantics.One(2), semantics.One(4)),
		semantics.NewArguments(semantics.One(2), semantics.One(3)),
	}

	if got := AssertOnTrueForArguments(p, known); got != semantics.AssertionMade {
		t.Fatalf("assert = %v, want AssertionMade", got)
	}
	if got := p.CallForElements(semantics.NewArguments(semantics.One(2), semantics.One(4)), semantics.NewSignature()); !got.IsTrue() {
		t.Errorf("p.call(2,4) = %v, want true", got)
	}
	if got := p.CallForElements(semantics.NewArguments(semantics.One(3), semantics.One(4)), semantics.NewSignature()); got != semantics.Undetermined {
		t.Errorf("p.call(3,4) = %v, want Undetermined", got)
	}
}

// Round-trip assertion idempotence: re-asserting an already-known tuple is redundant.
func TestTrueForArgumentsReassertIsRedundant(t *testing.T) {
	n := semantics.NewNode[int](1)
	args := []semantics.Arguments[semantics.Quantifier[int]]{semantics.NewArguments(semantics.One(1))}

	if got := AssertOnTrueForArguments(n, args); got != semantics.AssertionMade {
		t.Fatalf("first assert = %v, want AssertionMade", got)
	}
	if got := AssertOnTrueForArguments(n, args); got != semantics.AssertionRedundant {
		t.Errorf("second assert = %v, want AssertionRedundant", got)
	}
}

// A node and its negation disagree under the three-valued algebra.
func TestNegationIsDual(t *testing.T) {
	n := semantics.NewNode[int](1)
	neg := CreateNegation(n)

	check := func(label string) {
		t.Helper()
		a := semantics.NewArguments(semantics.One(1))
		got := n.CallForElements(a, semantics.NewSignature())
		gotNeg := neg.CallForElements(a, semantics.NewSignature())
		if semantics.Not(got) != gotNeg {
			t.Errorf("%s: n=%v, ¬n=%v, want ¬n = Not(n)", label, got, gotNeg)
		}
	}
	check("before assertion")

	AssertOnUniversallyObeyed(n)
	check("after UniversallyObeyed")
}

// Seed test 4: forward disjunction.
func TestDisjunctionForward(t *testing.T) {
	a := semantics.NewNode[int](1)
	AssertOnTrueForArguments(a, []semantics.Arguments[semantics.Quantifier[int]]{semantics.NewArguments(semantics.One(4))})
	b := semantics.NewNode[int](1)

	d := CreateDisjunction(a, semantics.OneToOne(1), b, semantics.OneToOne(1))

	if got := d.CallForElements(semantics.NewArguments(semantics.One(4)), semantics.NewSignature()); got != semantics.Determined(true) {
		t.Errorf("d.call(4) = %v, want Determined(true)", got)
	}
}

// A composite disjunction equals the pointwise ∨ of its operands.
func TestDisjunctionMatchesOrAlgebra(t *testing.T) {
	a := semantics.NewNode[int](1)
	b := semantics.NewNode[int](1)
	d := CreateDisjunction(a, semantics.OneToOne(1), b, semantics.OneToOne(1))

	arg := semantics.NewArguments(semantics.One(4))
	before := d.CallForElements(arg, semantics.NewSignature())
	wantBefore := semantics.Or(a.CallForElements(arg, semantics.NewSignature()), b.CallForElements(arg, semantics.NewSignature()))
	if before != wantBefore {
		t.Errorf("before assertion: d.call = %v, want %v", before, wantBefore)
	}
}

// Seed test 5: reverse disjunction (back-propagation).
func TestDisjunctionReverse(t *testing.T) {
	a := semantics.NewNode[int](1)
	b := semantics.NewNode[int](1)
	d := CreateDisjunction(a, semantics.OneToOne(1), b, semantics.OneToOne(1))

	args := semantics.NewArguments(semantics.One(4))
	if got := AssertOnTrueForArguments(CreateNegation(d), []semantics.Arguments[semantics.Quantifier[int]]{args}); got != semantics.AssertionMade {
		t.Fatalf("assert ¬d(4) = %v, want AssertionMade", got)
	}

	if got := a.CallForElements(args, semantics.NewSignature()); got != semantics.Determined(false) {
		t.Errorf("a.call(4) = %v, want Determined(false)", got)
	}
	if got := b.CallForElements(args, semantics.NewSignature()); got != semantics.Determined(false) {
		t.Errorf("b.call(4) = %v, want Determined(false)", got)
	}
}

// Seed test 6: modus ponens via Implies.
func TestImpliesModusPonens(t *testing.T) {
	a := semantics.NewNode[int](1)
	b := semantics.NewNode[int](1)

	if got := Implies(a, b); got != semantics.AssertionMade {
		t.Fatalf("Implies(a, b) = %v, want AssertionMade", got)
	}
	if got := AssertOnTrueForArguments(a, []semantics.Arguments[semantics.Quantifier[int]]{semantics.NewArguments(semantics.One(3))}); got != semantics.AssertionMade {
		t.Fatalf("assert a(3) = %v, want AssertionMade", got)
	}
	if got := b.CallForElements(semantics.NewArguments(semantics.One(3)), semantics.NewSignature()); got != semantics.Determined(true) {
		t.Errorf("b.call(3) = %v, want Determined(true)", got)
	}
}

func TestImpliesDoesNotAffirmTheConsequent(t *testing.T) {
	a := semantics.NewNode[int](1)
	b := semantics.NewNode[int](1)
	Implies(a, b)

	AssertOnTrueForArguments(b, []semantics.Arguments[semantics.Quantifier[int]]{semantics.NewArguments(semantics.One(3))})
	if got := a.CallForElements(semantics.NewArguments(semantics.One(3)), semantics.NewSignature()); got != semantics.Undetermined {
		t.Errorf("a.call(3) after knowing b(3) = %v, want Undetermined", got)
	}
}

// Conjunction forward/reverse, the dual of Disjunction's seed tests.
func TestConjunctionForward(t *testing.T) {
	a := semantics.NewNode[int](1)
	b := semantics.NewNode[int](1)
	AssertOnTrueForArguments(a, []semantics.Arguments[semantics.Quantifier[int]]{semantics.NewArguments(semantics.One(4))})
	AssertOnTrueForArguments(b, []semantics.Arguments[semantics.Quantifier[int]]{semantics.NewArguments(semantics.One(4))})

	c := CreateConjunction(a, semantics.OneToOne(1), b, semantics.OneToOne(1))
	if got := c.CallForElements(semantics.NewArguments(semantics.One(4)), semantics.NewSignature()); got != semantics.Determined(true) {
		t.Errorf("c.call(4) = %v, want Determined(true)", got)
	}
}

func TestConjunctionReverse(t *testing.T) {
	a := semantics.NewNode[int](1)
	b := semantics.NewNode[int](1)
	AssertOnTrueForArguments(b, []semantics.Arguments[semantics.Quantifier[int]]{semantics.NewArguments(semantics.One(4))})

	c := CreateConjunction(a, semantics.OneToOne(1), b, semantics.OneToOne(1))
	AssertOnTrueForArguments(CreateNegation(c), []semantics.Arguments[semantics.Quantifier[int]]{semantics.NewArguments(semantics.One(4))})

	if got := a.CallForElements(semantics.NewArguments(semantics.One(4)), semantics.NewSignature()); got != semantics.Determined(false) {
		t.Errorf("a.call(4) = %v, want Determined(false)", got)
	}
}

// Cycle safety: a self-referential disjunction still terminates.
func TestDisjunctionSelfCycleTerminates(t *testing.T) {
	a := semantics.NewNode[int](1)
	d := CreateDisjunction(a, semantics.OneToOne(1), a, semantics.OneToOne(1))

	done := make(chan semantics.TruthValue, 1)
	go func() {
		done <- d.CallForElements(semantics.NewArguments(semantics.One(1)), semantics.NewSignature())
	}()
	select {
	case got := <-done:
		if got != semantics.Undetermined {
			t.Errorf("d.call(1) = %v, want Undetermined", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("call_for_elements did not terminate on a self-referential composite")
	}
}

// LinkedPredicate forwards every operation to the linked behavior.
func TestLinkedPredicateForwards(t *testing.T) {
	source := semantics.NewNode[int](1)
	AssertOnTrueForArguments(source, []semantics.Arguments[semantics.Quantifier[int]]{semantics.NewArguments(semantics.One(7))})

	target := semantics.NewNode[int](1)
	target.Replace(func(semantics.Predicate[int]) semantics.Predicate[int] {
		return NewLinkedPredicate[int](source)
	})

	if got := target.CallForElements(semantics.NewArguments(semantics.One(7)), semantics.NewSignature()); got != semantics.Determined(true) {
		t.Errorf("linked target.call(7) = %v, want Determined(true)", got)
	}
}
