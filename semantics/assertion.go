package semantics

// AssertionResponse is the outcome of a client-initiated mutation: the
// entire error taxonomy for assertions. Queries have no analogous error
// channel — Undetermined is itself the defined answer for "not enough
// information, and not inconsistent."
type AssertionResponse int

const (
	// AssertionMade reports that the node's behavior changed: the
	// assertion added information not previously derivable.
	AssertionMade AssertionResponse = iota
	// AssertionRedundant reports that no change was made because the
	// assertion was already implied by current knowledge.
	AssertionRedundant
	// AssertionInvalid reports that no change was made because the
	// assertion would contradict current knowledge.
	AssertionInvalid
)

func (r AssertionResponse) String() string {
	switch r {
	case AssertionMade:
		return "AssertionMade"
	case AssertionRedundant:
		return "AssertionRedundant"
	case AssertionInvalid:
		return "AssertionInvalid"
	default:
		return "AssertionResponse(?)"
	}
}
