package semantics

import (
	"sync"

	"github.com/google/uuid"
)

// Predicate is the capability every node behavior satisfies: a query
// operation and the two evidence operations that are its dual. Both
// evidence operations take and gate on the traversal signature, the same
// as CallForElements, so that cyclic evidence collection terminates
// exactly the way cyclic querying does.
type Predicate[E comparable] interface {
	CallForElements(args Arguments[Quantifier[E]], sig *Signature) TruthValue
	GetElementsForTrue(sig *Signature) []Arguments[ElementSet[E]]
	GetElementsForFalse(sig *Signature) []Arguments[ElementSet[E]]
}

// cell is the interior-mutable box a Node shares across every handle to it.
// Replace is the only way to mutate behavior, and is guarded against
// reentrant calls from within the replacement closure itself (which would
// otherwise deadlock a plain sync.Mutex forever).
type cell[E comparable] struct {
	mu       sync.Mutex
	behavior Predicate[E]
}

// Node is a shared handle to a predicate's replaceable behavior: the graph
// vertex. Copying a *Node shares the same cell — multiple handles refer to
// the same underlying cell.
type Node[E comparable] struct {
	id    uuid.UUID
	arity int
	cell  *cell[E]
}

// NewNode returns a default node of the given arity: its behavior is
// Undetermined until something asserts or composes against it.
func NewNode[E comparable](arity int) *Node[E] {
	return NewNodeWithBehavior[E](arity, undeterminedBehavior[E]{})
}

// NewNodeWithBehavior returns a node whose behavior is explicitly given.
func NewNodeWithBehavior[E comparable](arity int, behavior Predicate[E]) *Node[E] {
	return &Node[E]{
		id:    uuid.New(),
		arity: arity,
		cell:  &cell[E]{behavior: behavior},
	}
}

// ID returns the node's identity, chiefly useful for tracing and for
// keying the evidence memo.
func (n *Node[E]) ID() uuid.UUID {
	return n.id
}

// Arity returns the node's fixed argument-tuple width.
func (n *Node[E]) Arity() int {
	return n.arity
}

// Clone returns the same handle: Node is reference-like, so cloning it
// just shares the cell — handles may be duplicated freely.
func (n *Node[E]) Clone() *Node[E] {
	return n
}

// CallForElements queries the node: arity is checked here before the call
// is ever handed to the current behavior, so every behavior can assume
// tuples arrive at the right width.
func (n *Node[E]) CallForElements(args Arguments[Quantifier[E]], sig *Signature) TruthValue {
	if args.Arity() != n.arity {
		panic(ArityMismatchError{Expected: n.arity, Got: args.Arity()})
	}
	n.cell.mu.Lock()
	behavior := n.cell.behavior
	n.cell.mu.Unlock()

	result := behavior.CallForElements(args, sig)
	sig.Trace(n.id.String(), behaviorName(behavior), "", result.String())
	return result
}

// GetElementsForTrue returns every argument tuple the node's current
// behavior can justify as true, memoized per traversal when sig carries an
// evidence cache (see NewSignatureWithOptions; NewSignature has none).
func (n *Node[E]) GetElementsForTrue(sig *Signature) []Arguments[ElementSet[E]] {
	return n.evidence(sig, true)
}

// GetElementsForFalse is the dual of GetElementsForTrue.
func (n *Node[E]) GetElementsForFalse(sig *Signature) []Arguments[ElementSet[E]] {
	return n.evidence(sig, false)
}

func (n *Node[E]) evidence(sig *Signature, polarity bool) []Arguments[ElementSet[E]] {
	if cached, ok := sig.CachedEvidence(n.id, polarity); ok {
		return cached.([]Arguments[ElementSet[E]])
	}

	n.cell.mu.Lock()
	behavior := n.cell.behavior
	n.cell.mu.Unlock()

	var result []Arguments[ElementSet[E]]
	if polarity {
		result = behavior.GetElementsForTrue(sig)
	} else {
		result = behavior.GetElementsForFalse(sig)
	}

	sig.StoreEvidence(n.id, polarity, result)
	return result
}

// Replace is the scoped-acquisition mutation that swaps a node's behavior:
// it acquires the cell, passes the previous behavior to f, and stores
// whatever f returns, with guaranteed release on every exit path
// (including a panicking f). f must not call Replace again on this same
// node — that would deadlock a reentrant acquisition; instead of hanging,
// a nested call is detected via TryLock and turned into an immediate
// panic.
func (n *Node[E]) Replace(f func(Predicate[E]) Predicate[E]) {
	if !n.cell.mu.TryLock() {
		panic(reentrantReplaceError{NodeID: n.id.String()})
	}
	defer n.cell.mu.Unlock()
	n.cell.behavior = f(n.cell.behavior)
}

// behaviorName returns a short label for the behavior's dynamic type, used
// only for tracing.
func behaviorName[E comparable](b Predicate[E]) string {
	return behaviorTypeName(b)
}
