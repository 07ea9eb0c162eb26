// Package config holds build constants and engine-wide options for the
// semantic graph engine: a version string and a handful of mode flags,
// not a general settings framework.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the current folgraph version.
// Set at build time via -ldflags, or left at its default for local builds.
var Version = "0.1.0"

// SignatureSource selects where traversal-signature tokens come from.
// Collisions between independently built graphs are benign but should be
// engineered out, and a fixed choice doesn't suit every caller — test
// fixtures want determinism, production graphs want real uniqueness — so
// the source is configurable rather than picked once outright.
type SignatureSource string

const (
	// SignatureRandom draws a fresh, effectively-unique token per
	// composite from a cryptographically strong RNG. The default, and
	// the right choice for any long-lived or concurrently-built graph.
	SignatureRandom SignatureSource = "random"

	// SignatureCounter draws tokens from a process-local monotonic
	// counter. Deterministic across runs, which is what reproducible
	// test fixtures want; unsafe to share across independently
	// constructed graphs in the same process, since two graphs built
	// with separate counters can mint colliding tokens.
	SignatureCounter SignatureSource = "counter"
)

// EngineOptions controls engine-wide behavior that is an implementation
// choice rather than a per-call parameter.
type EngineOptions struct {
	// SignatureSource selects the traversal-signature token generator.
	SignatureSource SignatureSource `yaml:"signatureSource"`

	// TraceEnabled turns on per-node traversal tracing (see internal/trace).
	TraceEnabled bool `yaml:"traceEnabled"`

	// EvidenceCacheSize bounds the per-traversal evidence memoization
	// cache. Zero disables memoization entirely.
	EvidenceCacheSize int `yaml:"evidenceCacheSize"`
}

// DefaultOptions returns the engine defaults: random signatures, tracing
// off, a modestly sized evidence cache.
func DefaultOptions() EngineOptions {
	return EngineOptions{
		SignatureSource:   SignatureRandom,
		TraceEnabled:      false,
		EvidenceCacheSize: 256,
	}
}

// LoadOptions reads a YAML options document from path, overlaying it onto
// DefaultOptions. A missing file is not an error: DefaultOptions() is
// returned unchanged, so a project with no options file on disk just gets
// the engine's built-in defaults.
func LoadOptions(path string) (EngineOptions, error) {
	opts := DefaultOptions()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("config: reading options file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return opts, fmt.Errorf("config: parsing options file %q: %w", path, err)
	}

	switch opts.SignatureSource {
	case SignatureRandom, SignatureCounter:
	default:
		return opts, fmt.Errorf("config: unknown signatureSource %q", opts.SignatureSource)
	}

	return opts, nil
}
