// Package trace provides opt-in, human-readable tracing of graph
// traversals: one line per node queried, showing which behavior answered
// and what it said. Evidence collection emits no lines. Color is
// gated on go-isatty plus the NO_COLOR convention, the same as any other
// CLI tool's terminal-capability detection.
package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Tracer emits traversal events. The zero value is a disabled no-op tracer,
// so callers that never opt in pay no cost beyond a nil check.
type Tracer struct {
	enabled bool
	out     io.Writer
	color   bool
}

// New returns a Tracer that writes to out when enabled is true. Color is
// auto-detected from out (only enabled when out is *os.File and is a real
// terminal, and NO_COLOR is unset).
func New(out io.Writer, enabled bool) *Tracer {
	return &Tracer{
		enabled: enabled,
		out:     out,
		color:   enabled && supportsColor(out),
	}
}

// Noop returns a disabled tracer; every Event call is a no-op.
func Noop() *Tracer {
	return &Tracer{enabled: false}
}

func supportsColor(out io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Enabled reports whether this tracer will actually write anything.
func (t *Tracer) Enabled() bool {
	return t != nil && t.enabled
}

// Event records one step of a traversal: the node being consulted, the
// kind of behavior that answered, the signature token tested (if any),
// and the result it produced.
func (t *Tracer) Event(nodeID, behavior, token, result string) {
	if t == nil || !t.enabled {
		return
	}
	if t.color {
		fmt.Fprintf(t.out, "\x1b[2m%s\x1b[0m %-24s sig=%s -> \x1b[1m%s\x1b[0m\n", nodeID, behavior, token, result)
		return
	}
	fmt.Fprintf(t.out, "%s %-24s sig=%s -> %s\n", nodeID, behavior, token, result)
}
