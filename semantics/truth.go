// Package semantics implements the in-memory predicate graph: nodes whose
// behavior can be replaced after other nodes have referenced them, wired
// together by logical connectives, queried under Kleene strong
// three-valued logic.
package semantics

// TruthValue is the three-valued answer to a query: true, false, or
// undetermined ("not enough information, and not inconsistent").
type TruthValue struct {
	determined bool
	value      bool
}

// Determined returns the truth value that is definitely v.
func Determined(v bool) TruthValue {
	return TruthValue{determined: true, value: v}
}

// Undetermined is the truth value meaning "no conclusion follows from
// what's known so far."
var Undetermined = TruthValue{}

// IsDetermined reports whether this value is Determined(something), and
// if so what that something is.
func (t TruthValue) IsDetermined() (value bool, ok bool) {
	return t.value, t.determined
}

// IsTrue reports whether t is Determined(true).
func (t TruthValue) IsTrue() bool {
	return t.determined && t.value
}

// IsFalse reports whether t is Determined(false).
func (t TruthValue) IsFalse() bool {
	return t.determined && !t.value
}

func (t TruthValue) String() string {
	if !t.determined {
		return "Undetermined"
	}
	if t.value {
		return "Determined(true)"
	}
	return "Determined(false)"
}

// Not computes ¬t: ¬Determined(x) = Determined(¬x); ¬Undetermined = Undetermined.
func Not(t TruthValue) TruthValue {
	if !t.determined {
		return Undetermined
	}
	return Determined(!t.value)
}

// And computes a ∧ b under Kleene's strong three-valued logic:
// Determined(true) ∧ x = x; Determined(false) ∧ x = Determined(false);
// Undetermined ∧ Undetermined = Undetermined.
func And(a, b TruthValue) TruthValue {
	if a.determined && !a.value {
		return Determined(false)
	}
	if b.determined && !b.value {
		return Determined(false)
	}
	if a.determined && b.determined {
		return Determined(a.value && b.value)
	}
	return Undetermined
}

// Or computes a ∨ b, dual to And.
func Or(a, b TruthValue) TruthValue {
	if a.determined && a.value {
		return Determined(true)
	}
	if b.determined && b.value {
		return Determined(true)
	}
	if a.determined && b.determined {
		return Determined(a.value || b.value)
	}
	return Undetermined
}
