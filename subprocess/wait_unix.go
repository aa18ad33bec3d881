//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"time"

	"golang.org/x/sys/unix"
)

// pollStatus performs a single non-blocking wait4
//   - done is false and err is nil while the child is still running
func pollStatus(pid int, _ platformHandle) (status ExitStatus, done bool, err error) {
	var ws unix.WaitStatus
	var rc int
	for {
		rc, err = unix.Wait4(pid, &ws, unix.WNOHANG, nil)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		err = ioError("wait4", err)
		return
	}
	if rc == 0 {
		return
	}
	status, done = exitStatusFromWaitStatus(ws), true
	return
}

// waitBlocking performs a blocking wait4
func waitBlocking(pid int, _ platformHandle) (status ExitStatus, err error) {
	var ws unix.WaitStatus
	for {
		_, err = unix.Wait4(pid, &ws, 0, nil)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		err = ioError("wait4", err)
		return
	}
	status = exitStatusFromWaitStatus(ws)
	return
}

// waitTimeout polls with exponential backoff until the child exits or
// the deadline elapses
//   - POSIX has no "wait with timeout" syscall; this is the one place
//     the library busy-polls, starting at a sub-millisecond interval
//     so a fast-exiting child is observed almost immediately, doubling
//     up to a 100ms ceiling so a long-running child costs negligible CPU
func waitTimeout(pid int, sys platformHandle, timeout time.Duration) (status ExitStatus, done bool, err error) {
	const (
		initialInterval = 500 * time.Microsecond
		maxInterval     = 100 * time.Millisecond
	)
	deadline := time.Now().Add(timeout)
	interval := initialInterval
	for {
		if status, done, err = pollStatus(pid, sys); err != nil || done {
			return
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		if interval > remaining {
			interval = remaining
		}
		time.Sleep(interval)
		if interval < maxInterval {
			interval *= 2
			if interval > maxInterval {
				interval = maxInterval
			}
		}
	}
}
