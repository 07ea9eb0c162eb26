package semantics

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSignatureFromConfigMissingFileUsesDefaults(t *testing.T) {
	defer SetDefaultTokenSource(RandomTokenSource{})

	var buf bytes.Buffer
	sig, err := NewSignatureFromConfig(filepath.Join(t.TempDir(), "absent.yaml"), &buf)
	if err != nil {
		t.Fatalf("NewSignatureFromConfig: %v", err)
	}
	if sig == nil {
		t.Fatal("NewSignatureFromConfig returned a nil signature")
	}
	if _, ok := DefaultTokenSource.(RandomTokenSource); !ok {
		t.Errorf("DefaultTokenSource = %T, want RandomTokenSource (the default)", DefaultTokenSource)
	}
}

func TestNewSignatureFromConfigCounterSourceIsDeterministic(t *testing.T) {
	defer SetDefaultTokenSource(RandomTokenSource{})

	path := filepath.Join(t.TempDir(), "options.yaml")
	doc := "signatureSource: counter\ntraceEnabled: true\nevidenceCacheSize: 4\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	var buf bytes.Buffer
	sig, err := NewSignatureFromConfig(path, &buf)
	if err != nil {
		t.Fatalf("NewSignatureFromConfig: %v", err)
	}

	counter, ok := DefaultTokenSource.(*CounterTokenSource)
	if !ok {
		t.Fatalf("DefaultTokenSource = %T, want *CounterTokenSource", DefaultTokenSource)
	}
	first := counter.Next()
	second := counter.Next()
	if first == second {
		t.Error("CounterTokenSource produced the same token twice in a row")
	}
	var wantFirst, wantSecond Token
	wantFirst[15] = 1
	wantSecond[15] = 2
	if first != wantFirst || second != wantSecond {
		t.Errorf("counter tokens = %v, %v, want %v, %v (monotonic, starting at 1)", first, second, wantFirst, wantSecond)
	}

	n := NewNode[int](1)
	n.CallForElements(NewArguments(One(1)), sig)
	if buf.Len() == 0 {
		t.Error("expected TraceEnabled to write at least one traversal event to out")
	}
}
