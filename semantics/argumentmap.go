package semantics

// ArgumentMap is a total function from {0,...,to-1} into {0,...,from-1}:
// "to compute position j of the target, look at position mapping[j] of the
// source." Composite connectives use one ArgumentMap per operand to relate
// the composite's argument positions to that operand's.
type ArgumentMap struct {
	from    int
	to      int
	mapping []int
}

// NewArgumentMap builds the map given explicit widths and the per-target-
// position source index. A width mismatch (len(mapping) != to) is returned
// on its own; otherwise every out-of-range entry is returned, aggregated,
// rather than stopping at the first one (see validateArgumentMap).
func NewArgumentMap(from, to int, mapping []int) (ArgumentMap, error) {
	if err := validateArgumentMap(from, to, mapping); err != nil {
		return ArgumentMap{}, err
	}
	cp := make([]int, len(mapping))
	copy(cp, mapping)
	return ArgumentMap{from: from, to: to, mapping: cp}, nil
}

// MustNewArgumentMap is NewArgumentMap but panics on an invalid map: a
// malformed argument map is always a construction-time programmer error,
// never a runtime condition a caller should recover from.
func MustNewArgumentMap(from, to int, mapping []int) ArgumentMap {
	m, err := NewArgumentMap(from, to, mapping)
	if err != nil {
		panic(err)
	}
	return m
}

// OneToOne returns the identity map of width n, the common case when a
// composite connective's operand shares its argument positions exactly.
func OneToOne(n int) ArgumentMap {
	mapping := make([]int, n)
	for i := range mapping {
		mapping[i] = i
	}
	return ArgumentMap{from: n, to: n, mapping: mapping}
}

// From returns the map's source width.
func (m ArgumentMap) From() int { return m.from }

// To returns the map's target width.
func (m ArgumentMap) To() int { return m.to }

// Forward projects a source-shaped tuple into the target shape: pure
// per-position lookup, result[j] = src[mapping[j]].
func Forward[T any](m ArgumentMap, src Arguments[T]) Arguments[T] {
	if src.Arity() != m.from {
		panic(ArityMismatchError{Expected: m.from, Got: src.Arity()})
	}
	out := make([]T, m.to)
	for j, i := range m.mapping {
		out[j] = src.values[i]
	}
	return Arguments[T]{values: out}
}

// Backward lifts a target-shaped tuple back into source shape. A source
// position that is the image of no target index receives filler; one that
// is the image of exactly one target index receives that target's value;
// one that is the image of several receives them combined with merge, in
// target-index order.
func Backward[T any](m ArgumentMap, tgt Arguments[T], filler T, merge func(T, T) T) Arguments[T] {
	if tgt.Arity() != m.to {
		panic(ArityMismatchError{Expected: m.to, Got: tgt.Arity()})
	}
	out := make([]T, m.from)
	set := make([]bool, m.from)
	for j, i := range m.mapping {
		if !set[i] {
			out[i] = tgt.values[j]
			set[i] = true
		} else {
			out[i] = merge(out[i], tgt.values[j])
		}
	}
	for i, ok := range set {
		if !ok {
			out[i] = filler
		}
	}
	return Arguments[T]{values: out}
}

// QuantifierMerge combines two Quantifier values that both project onto
// the same source position: agreeing One(e) values are kept, anything else
// (including a mismatch between two distinct elements) safely widens to
// Any rather than guessing. Widening here only loses precision in a
// subsequent query, never correctness. Used as the merge function passed
// to Backward when a composite's argument map folds more than one target
// position onto the same source position.
func QuantifierMerge[E comparable](a, b Quantifier[E]) Quantifier[E] {
	if a.Equal(b) {
		return a
	}
	return AnyElement[E]()
}
