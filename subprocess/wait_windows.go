//go:build windows

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"time"

	"golang.org/x/sys/windows"
)

// pollStatus performs a zero-timeout WaitForSingleObject
func pollStatus(pid int, sys platformHandle) (status ExitStatus, done bool, err error) {
	return waitHandle(sys.handle, 0)
}

// waitBlocking waits with an infinite timeout
func waitBlocking(pid int, sys platformHandle) (status ExitStatus, err error) {
	status, _, err = waitHandle(sys.handle, windows.INFINITE)
	return
}

// waitTimeout waits with a native millisecond timeout
//   - unlike POSIX, WaitForSingleObject accepts a timeout directly: no
//     busy-polling is needed on this platform
func waitTimeout(pid int, sys platformHandle, timeout time.Duration) (status ExitStatus, done bool, err error) {
	ms := uint32(timeout.Milliseconds())
	return waitHandle(sys.handle, ms)
}

func waitHandle(handle windows.Handle, timeoutMs uint32) (status ExitStatus, done bool, err error) {
	rc, err := windows.WaitForSingleObject(handle, timeoutMs)
	if err != nil {
		err = ioError("WaitForSingleObject", err)
		return
	}
	switch rc {
	case uint32(windows.WAIT_TIMEOUT):
		return
	case windows.WAIT_OBJECT_0:
		var code uint32
		if err = windows.GetExitCodeProcess(handle, &code); err != nil {
			err = ioError("GetExitCodeProcess", err)
			return
		}
		status, done = exitStatusFromExitCode(code), true
		return
	default:
		err = logicError("unexpected WaitForSingleObject result")
		return
	}
}
