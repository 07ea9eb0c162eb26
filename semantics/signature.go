package semantics

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lattice-logic/folgraph/internal/config"
	"github.com/lattice-logic/folgraph/internal/evidencecache"
	"github.com/lattice-logic/folgraph/internal/trace"
)

// Token is one traversal-signature entry: a composite connective's
// identity, stamped on the behaviors it installs in its operands so that
// recursion into the same composite can be recognized and stopped.
type Token [16]byte

func (t Token) String() string {
	return fmt.Sprintf("%x", t[:4])
}

// TokenSource mints fresh tokens for newly constructed composites.
type TokenSource interface {
	Next() Token
}

// RandomTokenSource draws tokens from a cryptographically strong RNG
// (google/uuid's v4 generator) rather than a bare math/rand 64-bit token,
// since real uniqueness across independently built graphs in the same
// process is exactly what rules out signature collisions.
type RandomTokenSource struct{}

// Next returns a fresh random token.
func (RandomTokenSource) Next() Token {
	return Token(uuid.New())
}

// CounterTokenSource draws tokens from a monotonic, process-local counter.
// Deterministic across runs, for test fixtures that want reproducible
// signature tokens; not safe to share across independently constructed
// graphs, since two counters started from zero will mint colliding tokens.
type CounterTokenSource struct {
	n atomic.Uint64
}

// NewCounterTokenSource returns a fresh counter starting at zero.
func NewCounterTokenSource() *CounterTokenSource {
	return &CounterTokenSource{}
}

// Next returns the next counter value, encoded into a Token.
func (c *CounterTokenSource) Next() Token {
	n := c.n.Add(1)
	var t Token
	binary.BigEndian.PutUint64(t[8:], n)
	return t
}

// TokenSourceFromOptions builds the TokenSource named by opts.SignatureSource.
func TokenSourceFromOptions(opts config.EngineOptions) TokenSource {
	switch opts.SignatureSource {
	case config.SignatureCounter:
		return NewCounterTokenSource()
	default:
		return RandomTokenSource{}
	}
}

// DefaultTokenSource is the package-wide token generator every connective
// constructor (CreateNegation, CreateDisjunction, CreateConjunction) draws
// its composite's token from. It starts as
// RandomTokenSource{}; SetDefaultTokenSource can override it (e.g. to a
// CounterTokenSource for deterministic tests).
var DefaultTokenSource TokenSource = RandomTokenSource{}

// SetDefaultTokenSource overrides DefaultTokenSource.
func SetDefaultTokenSource(ts TokenSource) {
	DefaultTokenSource = ts
}

// Signature is the per-query traversal breadcrumb set: "have I already
// crossed this composite?" It is created fresh for each top-level call and
// is not part of persistent graph state. It also carries the optional
// tracer and evidence memo for that one traversal (see internal/trace and
// internal/evidencecache) — both are traversal-scoped the same way the
// token breadcrumbs are.
type Signature struct {
	tokens []Token
	tracer *trace.Tracer
	cache  *evidencecache.Cache
}

// NewSignature returns an empty signature, ready for a fresh top-level query.
func NewSignature() *Signature {
	return &Signature{tracer: trace.Noop()}
}

// NewSignatureWithOptions returns an empty signature configured from
// EngineOptions: tracer attached per TraceEnabled, evidence memo bounded by
// EvidenceCacheSize.
func NewSignatureWithOptions(opts config.EngineOptions, tracer *trace.Tracer) *Signature {
	if tracer == nil || !opts.TraceEnabled {
		tracer = trace.Noop()
	}
	return &Signature{
		tracer: tracer,
		cache:  evidencecache.New(opts.EvidenceCacheSize),
	}
}

// NewSignatureFromConfig loads EngineOptions from path (DefaultOptions if
// no file exists there), installs the TokenSource it names as
// DefaultTokenSource for every connective constructor called from this
// point on, and returns a Signature traced to out per TraceEnabled with an
// evidence memo bounded by EvidenceCacheSize. This is the entry point that
// makes a deployment's options.yaml actually take effect — most callers
// building a graph in-process just want NewSignature().
func NewSignatureFromConfig(path string, out io.Writer) (*Signature, error) {
	opts, err := config.LoadOptions(path)
	if err != nil {
		return nil, err
	}
	SetDefaultTokenSource(TokenSourceFromOptions(opts))
	return NewSignatureWithOptions(opts, trace.New(out, opts.TraceEnabled)), nil
}

// Trace records one traversal event if this signature has a live tracer.
func (s *Signature) Trace(nodeID, behavior, token, result string) {
	if s == nil || s.tracer == nil {
		return
	}
	s.tracer.Event(nodeID, behavior, token, result)
}

// CachedEvidence returns a memoized evidence list for (nodeID, polarity) if
// this traversal has a cache and it was already computed once this call.
func (s *Signature) CachedEvidence(nodeID uuid.UUID, polarity bool) (any, bool) {
	if s == nil {
		return nil, false
	}
	return s.cache.Get(evidencecache.Key{NodeID: nodeID, Polarity: polarity})
}

// StoreEvidence memoizes an evidence list for (nodeID, polarity).
func (s *Signature) StoreEvidence(nodeID uuid.UUID, polarity bool, value any) {
	if s == nil {
		return
	}
	s.cache.Add(evidencecache.Key{NodeID: nodeID, Polarity: polarity}, value)
}

// Contains reports whether token has already been crossed in this traversal.
func (s *Signature) Contains(token Token) bool {
	if s == nil {
		return false
	}
	for _, t := range s.tokens {
		if t == token {
			return true
		}
	}
	return false
}

// Push records that token has now been crossed.
func (s *Signature) Push(token Token) {
	s.tokens = append(s.tokens, token)
}

// Depth returns the number of tokens crossed so far, chiefly for tracing
// and for bounding traversal cost to the depth of the composite graph.
func (s *Signature) Depth() int {
	return len(s.tokens)
}
