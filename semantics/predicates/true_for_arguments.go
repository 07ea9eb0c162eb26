package predicates

import "github.com/lattice-logic/folgraph/semantics"

// TrueForArguments is the behavior asserting a predicate holds for a
// specific, explicit list of argument tuples, falling back to an inner
// wrapped behavior for anything else — the wrapping that lets a node's
// behavior be replaced without discarding what it already knew.
type TrueForArguments[E comparable] struct {
	args  []semantics.Arguments[semantics.Quantifier[E]]
	inner semantics.Predicate[E]
}

// NewTrueForArguments wraps inner with a TrueForArguments behavior
// carrying args.
func NewTrueForArguments[E comparable](args []semantics.Arguments[semantics.Quantifier[E]], inner semantics.Predicate[E]) TrueForArguments[E] {
	cp := make([]semantics.Arguments[semantics.Quantifier[E]], len(args))
	copy(cp, args)
	return TrueForArguments[E]{args: cp, inner: inner}
}

func (b TrueForArguments[E]) CallForElements(a semantics.Arguments[semantics.Quantifier[E]], sig *semantics.Signature) semantics.TruthValue {
	for _, known := range b.args {
		if semantics.EqualQuantifierArguments(known, a) {
			return semantics.Determined(true)
		}
	}
	return b.inner.CallForElements(a, sig)
}

func (b TrueForArguments[E]) GetElementsForTrue(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	out := make([]semantics.Arguments[semantics.ElementSet[E]], 0, len(b.args))
	for _, known := range b.args {
		out = append(out, semantics.ToEvidence(known))
	}
	return append(out, b.inner.GetElementsForTrue(sig)...)
}

func (b TrueForArguments[E]) GetElementsForFalse(sig *semantics.Signature) []semantics.Arguments[semantics.ElementSet[E]] {
	return b.inner.GetElementsForFalse(sig)
}

// AssertOnTrueForArguments asserts that node holds for every tuple in
// args. Tuples already known true are dropped from the pending list rather
// than re-asserted (keeping the true-evidence free of duplicates); a
// tuple the node already knows false makes the whole assertion invalid. If
// every tuple turns out already known, the assertion is redundant;
// otherwise the node's behavior is wrapped with a TrueForArguments carrying
// exactly the surviving tuples.
func AssertOnTrueForArguments[E comparable](node *semantics.Node[E], args []semantics.Arguments[semantics.Quantifier[E]]) semantics.AssertionResponse {
	pending := make([]semantics.Arguments[semantics.Quantifier[E]], 0, len(args))
	for _, a := range args {
		sig := semantics.NewSignature()
		switch v, ok := node.CallForElements(a, sig).IsDetermined(); {
		case ok && !v:
			return semantics.AssertionInvalid
		case ok && v:
			// already true: drop it
		default:
			dup := false
			for _, p := range pending {
				if semantics.EqualQuantifierArguments(p, a) {
					dup = true
					break
				}
			}
			if !dup {
				pending = append(pending, a)
			}
		}
	}

	if len(pending) == 0 {
		return semantics.AssertionRedundant
	}

	node.Replace(func(prev semantics.Predicate[E]) semantics.Predicate[E] {
		return NewTrueForArguments(pending, prev)
	})
	return semantics.AssertionMade
}
