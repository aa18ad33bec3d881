/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/haraldrudell/parl"
)

// ProcessHandle is a spawned child process together with whichever ends
// of its standard streams the parent retained
//   - invariant 1: once Poll, Wait or WaitTimeout report the child has
//     exited, the recorded [ExitStatus] never changes and no later wait
//     call re-observes the kernel
//   - invariant 2: a ProcessHandle that is neither [ProcessHandle.Detach]'d
//     nor already waited-on is waited for when it is garbage collected,
//     the idiomatic-Go stand-in for the teacher language's Drop: this
//     prevents an un-awaited child from outliving the handle as a zombie
type ProcessHandle struct {
	mu  sync.Mutex
	pid int
	id  uuid.UUID
	sys platformHandle

	// Stdin, Stdout, Stderr are the parent-retained ends of any stream
	// that was given [ToPipe]; nil for Inherit, ToFile or the mirrored
	// side of a Merge
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File

	exitStatus *ExitStatus
	// pidCleared implements invariant 1 (at most one of {pid, exit_status}
	// is live): true once exitStatus is set or the handle is Detach'd,
	// after which [ProcessHandle.Pid] reports no pid. The internal pid
	// field itself is never zeroed, since wait/signal still need it
	// internally for as long as this handle might call them
	pidCleared bool
	detached   bool
	// exited closes exactly when exitStatus transitions from unset to
	// set, letting any number of goroutines await termination without
	// polling; a detached handle's exited channel never closes, since
	// this library no longer owns observing that process
	exited parl.Awaitable
}

// Create spawns a child process per c
func Create(c Config) (h *ProcessHandle, err error) {
	if err = c.validate(); err != nil {
		return
	}
	if c.Redirections == (Redirections{}) {
		c.Redirections = InheritAll
	}

	var sp streamPlumbing
	if sp, err = planStreams(c.Redirections); err != nil {
		return
	}
	if err = sp.finalizeForSpawn(); err != nil {
		sp.closeSpawnEnds()
		sp.closeParentEnds()
		return
	}

	if parl.IsThisDebug() {
		parl.Debug("subprocess.Create: " + strings.Join(c.Argv, " "))
	}

	var pid int
	var sys platformHandle
	pid, sys, err = spawn(&c, &sp)
	// the child-side end of every pipe, and any ToFile target, is the
	// parent's responsibility to close whether or not spawning succeeded
	if closeErr := sp.closeSpawnEnds(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		sp.closeParentEnds()
		return
	}

	h = &ProcessHandle{
		pid:    pid,
		id:     uuid.New(),
		sys:    sys,
		Stdin:  sp.ParentStdin,
		Stdout: sp.ParentStdout,
		Stderr: sp.ParentStderr,
	}
	runtime.SetFinalizer(h, (*ProcessHandle).finalize)
	return
}

// Pid returns the child's process id
//   - ok is false once the exit status has been recorded or the handle
//     has been [ProcessHandle.Detach]'d, per invariant 1: at most one
//     of {pid, exit status} is live at a time
func (h *ProcessHandle) Pid() (pid int, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pidCleared {
		return 0, false
	}
	return h.pid, true
}

// ID returns a per-handle diagnostic identifier, stable for the life of
// the handle and suitable for correlating log lines across the
// plumbing, wait and communicate layers
func (h *ProcessHandle) ID() uuid.UUID { return h.id }

// ExitedCh returns a channel that closes once the child's exit status
// has been observed by Poll, Wait or WaitTimeout. The channel never
// closes for a handle that was [ProcessHandle.Detach]'d before exit
// was observed
func (h *ProcessHandle) ExitedCh() parl.AwaitableCh { return h.exited.Ch() }

// recordExit stores status as final, clears the pid per invariant 1,
// releases the platform handle and releases any goroutine blocked on
// [ProcessHandle.ExitedCh]; caller holds h.mu
func (h *ProcessHandle) recordExit(status ExitStatus) {
	h.exitStatus = &status
	h.pidCleared = true
	h.exited.Close()
	releaseHandle(h.sys)
}

// Poll performs a single non-blocking check of the child's status
//   - done is false while the child is still running
//   - once [ProcessHandle.Detach]'d, reports [Undetermined] without
//     touching the kernel: the library no longer owns observing this
//     process
func (h *ProcessHandle) Poll() (status ExitStatus, done bool, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exitStatus != nil {
		return *h.exitStatus, true, nil
	}
	if h.detached {
		return undeterminedStatus, true, nil
	}
	if status, done, err = pollStatus(h.pid, h.sys); err == nil && done {
		h.recordExit(status)
	}
	return
}

// Wait blocks until the child exits
//   - once [ProcessHandle.Detach]'d, returns [Undetermined] immediately
func (h *ProcessHandle) Wait() (status ExitStatus, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exitStatus != nil {
		return *h.exitStatus, nil
	}
	if h.detached {
		return undeterminedStatus, nil
	}
	parl.Debug("subprocess.ProcessHandle.Wait pid=%d", h.pid)
	if status, err = waitBlocking(h.pid, h.sys); err == nil {
		h.recordExit(status)
	}
	return
}

// WaitTimeout blocks until the child exits or timeout elapses
//   - done is false if timeout elapsed first; the child is still running
//   - once [ProcessHandle.Detach]'d, returns [Undetermined] immediately
func (h *ProcessHandle) WaitTimeout(timeout time.Duration) (status ExitStatus, done bool, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exitStatus != nil {
		return *h.exitStatus, true, nil
	}
	if h.detached {
		return undeterminedStatus, true, nil
	}
	if status, done, err = waitTimeout(h.pid, h.sys, timeout); err == nil && done {
		h.recordExit(status)
	}
	return
}

// Terminate requests graceful termination: SIGTERM on POSIX,
// TerminateProcess on Windows
//   - a no-op against an already-exited child
func (h *ProcessHandle) Terminate() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exitStatus != nil {
		return nil
	}
	return terminateProcess(h.pid, h.sys)
}

// Kill requests immediate termination: SIGKILL on POSIX, the same
// TerminateProcess call as Terminate on Windows (the platform makes no
// graceful/forceful distinction)
//   - a no-op against an already-exited child
func (h *ProcessHandle) Kill() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exitStatus != nil {
		return nil
	}
	return killProcess(h.pid, h.sys)
}

// Detach releases the handle from the implicit-wait-on-finalize
// contract: the child is allowed to outlive the handle
//   - clears the pid ([ProcessHandle.Pid] subsequently reports no pid)
//   - after Detach, a subsequent Poll/Wait/WaitTimeout on this handle
//     reports [Undetermined] without querying the kernel, since the
//     library no longer owns reaping it
func (h *ProcessHandle) Detach() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detached = true
	h.pidCleared = true
	runtime.SetFinalizer(h, nil)
}

// finalize implements invariant 2: an un-awaited, non-detached handle
// is waited for when garbage collected, so the kernel process table
// never accumulates zombies a caller forgot to reap
func (h *ProcessHandle) finalize() {
	h.mu.Lock()
	skip := h.detached || h.exitStatus != nil
	h.mu.Unlock()
	if skip {
		return
	}
	h.Wait()
}
