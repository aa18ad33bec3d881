//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

// invariant 4: round-trip fidelity through a command that echoes stdin
// to stdout unchanged
func TestCommunicateBytesRoundTrip(t *testing.T) {
	h, err := Create(Config{Argv: []string{"cat"}, Redirections: AllPiped})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	input := bytes.Repeat([]byte("the quick brown fox\n"), 200)
	stdout, stderr, err := h.CommunicateBytes(context.Background(), input)
	if err != nil {
		t.Fatalf("CommunicateBytes: %v", err)
	}
	if !bytes.Equal(stdout, input) {
		t.Errorf("round-trip mismatch: got %d bytes, want %d", len(stdout), len(input))
	}
	if len(stderr) != 0 {
		t.Errorf("expected empty stderr, got %q", stderr)
	}
}

func TestCommunicateSingleStreamDirectPath(t *testing.T) {
	h, err := Create(Config{
		Argv:         []string{"sh", "-c", "echo hello"},
		Redirections: Redirections{Stdin: Inherit(), Stdout: ToPipe(), Stderr: Inherit()},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stdout, _, err := h.CommunicateBytes(context.Background(), nil)
	if err != nil {
		t.Fatalf("CommunicateBytes: %v", err)
	}
	if string(stdout) != "hello\n" {
		t.Errorf("stdout = %q, want %q", stdout, "hello\n")
	}
}

func TestCommunicateDecodeError(t *testing.T) {
	h, err := Create(Config{Argv: []string{"cat"}, Redirections: AllPiped})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, _, err = h.Communicate(context.Background(), "")
	// stdin/stdout/stderr are valid UTF-8 here (empty), so this call
	// should simply succeed; invalid UTF-8 is only reachable from the
	// child's own output, exercised below by a child printing a 0xff byte
	if err != nil {
		t.Fatalf("Communicate: %v", err)
	}

	h2, err := Create(Config{Argv: []string{"printf", "\\xff"}, Redirections: Redirections{Stdin: Inherit(), Stdout: ToPipe(), Stderr: Inherit()}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, _, err = h2.Communicate(context.Background(), "")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Communicate bad err: %v exp wrapping: %v", err, ErrDecode)
	}
}

func TestCommunicateConcurrentTwoStreams(t *testing.T) {
	h, err := Create(Config{
		Argv:         []string{"sh", "-c", "echo out; echo err 1>&2"},
		Redirections: Redirections{Stdin: Inherit(), Stdout: ToPipe(), Stderr: ToPipe()},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stdout, stderr, err := h.CommunicateBytes(context.Background(), nil)
	if err != nil {
		t.Fatalf("CommunicateBytes: %v", err)
	}
	if string(stdout) != "out\n" {
		t.Errorf("stdout = %q, want %q", stdout, "out\n")
	}
	if string(stderr) != "err\n" {
		t.Errorf("stderr = %q, want %q", stderr, "err\n")
	}
}
