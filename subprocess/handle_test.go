//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"errors"
	"testing"
	"time"
)

func TestCreateArgsEmpty(t *testing.T) {
	_, err := Create(Config{})
	if err == nil {
		t.Fatal("Create missing err")
	} else if !errors.Is(err, ErrArgsEmpty) {
		t.Errorf("Create bad err: %v exp: %v", err, ErrArgsEmpty)
	}
}

func TestCreateMissingExecutable(t *testing.T) {
	_, err := Create(Config{Argv: []string{"this-executable-does-not-exist-2000jedi"}})
	if err == nil {
		t.Fatal("Create missing err")
	} else if !errors.Is(err, ErrSpawn) {
		t.Errorf("Create bad err: %v exp wrapping: %v", err, ErrSpawn)
	}
}

func TestWaitSuccess(t *testing.T) {
	h, err := Create(Config{Argv: []string{"true"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	status, err := h.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !status.Success() {
		t.Errorf("status not success: %s", status)
	}
}

func TestWaitExitCode(t *testing.T) {
	h, err := Create(Config{Argv: []string{"sh", "-c", "exit 7"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	status, err := h.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if code, ok := status.ExitCode(); !ok || code != 7 {
		t.Errorf("ExitCode: %d ok: %t, exp 7 true", code, ok)
	}
}

// invariant 1: repeated Poll after termination returns the same status
func TestPollIdempotent(t *testing.T) {
	h, err := Create(Config{Argv: []string{"true"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err = h.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	s1, done1, err := h.Poll()
	if err != nil || !done1 {
		t.Fatalf("Poll after wait: done=%t err=%v", done1, err)
	}
	s2, done2, err := h.Poll()
	if err != nil || !done2 {
		t.Fatalf("second Poll after wait: done=%t err=%v", done2, err)
	}
	if s1 != s2 {
		t.Errorf("Poll not idempotent: %s vs %s", s1, s2)
	}
}

func TestWaitTimeoutElapsesThenCompletes(t *testing.T) {
	h, err := Create(Config{Argv: []string{"sleep", "0.2"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, done, err := h.WaitTimeout(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("WaitTimeout: %v", err)
	}
	if done {
		t.Fatal("WaitTimeout reported done too early")
	}
	status, err := h.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !status.Success() {
		t.Errorf("status not success: %s", status)
	}
}

func TestWaitTimeoutZeroIsPoll(t *testing.T) {
	h, err := Create(Config{Argv: []string{"sleep", "1"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer h.Kill()
	defer h.Wait()

	_, done, err := h.WaitTimeout(0)
	if err != nil {
		t.Fatalf("WaitTimeout(0): %v", err)
	}
	if done {
		t.Fatal("WaitTimeout(0) reported done on a running process")
	}
}

func TestKillSignaled(t *testing.T) {
	h, err := Create(Config{Argv: []string{"sleep", "5"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err = h.Kill(); err != nil {
		t.Fatalf("Kill: %v", err)
	}
	status, err := h.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if sig, ok := status.Signal(); !ok {
		t.Errorf("expected Signaled status, got %s", status)
	} else if sig == 0 {
		t.Error("expected non-zero signal number")
	}
}

func TestDetachSkipsImplicitWait(t *testing.T) {
	h, err := Create(Config{Argv: []string{"true"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := h.Pid(); !ok {
		t.Fatal("Pid not available before Detach")
	}
	h.Detach()
	if _, ok := h.Pid(); ok {
		t.Fatal("Pid still available after Detach")
	}
	// after Detach, the library no longer owns observing this process:
	// Wait must report Undetermined rather than querying the kernel
	status, err := h.Wait()
	if err != nil {
		t.Fatalf("Wait after Detach: %v", err)
	}
	if status.Kind() != Undetermined {
		t.Errorf("Wait after Detach: %s, want Undetermined", status)
	}
}
