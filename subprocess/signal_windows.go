//go:build windows

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import "golang.org/x/sys/windows"

// Windows has no general signal-delivery mechanism: Terminate and Kill
// both resolve to TerminateProcess with the same exit code,
// windowsTerminationExitCode. An already-exited process is not
// treated as an error: TerminateProcess naturally fails with
// ERROR_ACCESS_DENIED in that race, which is recovered by checking
// whether the process has in fact already exited
const windowsTerminationExitCode = 1

func terminateProcess(pid int, sys platformHandle) error {
	return terminateHandle(sys.handle)
}

func killProcess(pid int, sys platformHandle) error {
	return terminateHandle(sys.handle)
}

func terminateHandle(handle windows.Handle) error {
	err := windows.TerminateProcess(handle, windowsTerminationExitCode)
	if err == nil {
		return nil
	}
	var code uint32
	if gecErr := windows.GetExitCodeProcess(handle, &code); gecErr == nil && code != uint32(stillActive) {
		return nil
	}
	return ioError("TerminateProcess", err)
}

const stillActive = 259
