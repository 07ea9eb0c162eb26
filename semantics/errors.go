package semantics

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ArityMismatchError reports that an argument tuple's width didn't match
// the width a node or argument map expected. This is a programmer-contract
// violation, not part of the runtime AssertionResponse taxonomy: call
// boundaries (Node.CallForElements, Forward, Backward) panic with it.
// NewArgumentMap returns it as an error value for a mapping of the wrong
// width, and MustNewArgumentMap panics with that error.
//
// Grounded on internal/typesystem/error.go's small typed-error-struct
// pattern (SymbolNotFoundError).
type ArityMismatchError struct {
	Expected int
	Got      int
}

func (e ArityMismatchError) Error() string {
	return fmt.Sprintf("semantics: arity mismatch: expected %d, got %d", e.Expected, e.Got)
}

// ArgumentMapRangeError reports that an ArgumentMap entry referenced a
// source position outside [0, from).
type ArgumentMapRangeError struct {
	TargetIndex int
	SourceIndex int
	From        int
}

func (e ArgumentMapRangeError) Error() string {
	return fmt.Sprintf("semantics: argument map entry %d maps to source index %d, out of range [0, %d)",
		e.TargetIndex, e.SourceIndex, e.From)
}

// validateArgumentMap first checks the mapping's width and returns an
// ArityMismatchError alone if it is wrong; otherwise it checks every entry
// at once and aggregates every out-of-range entry found, rather than
// stopping at the first offense — grounded on pack-mate hashicorp/nomad's
// use of go-multierror for multi-field validation.
func validateArgumentMap(from, to int, mapping []int) error {
	if len(mapping) != to {
		return ArityMismatchError{Expected: to, Got: len(mapping)}
	}

	var result *multierror.Error
	for j, i := range mapping {
		if i < 0 || i >= from {
			result = multierror.Append(result, ArgumentMapRangeError{TargetIndex: j, SourceIndex: i, From: from})
		}
	}
	return result.ErrorOrNil()
}

// reentrantReplaceError is panicked when Replace is called recursively on
// the same node's cell from within its own replacement closure. A
// non-reentrant Go mutex would simply hang forever in that case, so
// Replace detects it with TryLock and panics instead of deadlocking
// silently.
type reentrantReplaceError struct {
	NodeID string
}

func (e reentrantReplaceError) Error() string {
	return fmt.Sprintf("semantics: reentrant Replace on node %s (replace closure must not call Replace on the same node)", e.NodeID)
}
