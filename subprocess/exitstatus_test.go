/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import "testing"

func TestExitStatusVariants(t *testing.T) {
	e := exitedStatus(0)
	if !e.Success() {
		t.Error("exitedStatus(0) not Success")
	}
	if code, ok := e.ExitCode(); !ok || code != 0 {
		t.Errorf("ExitCode: %d %t", code, ok)
	}
	if _, ok := e.Signal(); ok {
		t.Error("Exited status reported a signal")
	}

	e = exitedStatus(1)
	if e.Success() {
		t.Error("exitedStatus(1) reported Success")
	}

	s := signaledStatus(9)
	if sig, ok := s.Signal(); !ok || sig != 9 {
		t.Errorf("Signal: %d %t", sig, ok)
	}
	if _, ok := s.ExitCode(); ok {
		t.Error("Signaled status reported an exit code")
	}

	u := undeterminedStatus
	if u.Kind() != Undetermined {
		t.Errorf("Kind: %v", u.Kind())
	}
	if u.String() != "undetermined" {
		t.Errorf("String: %q", u.String())
	}
}
