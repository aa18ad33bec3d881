//go:build windows

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import "golang.org/x/sys/windows"

// platformHandle holds the platform-specific state a [ProcessHandle]
// needs beyond the pid
//   - Windows: the HANDLE returned by CreateProcess, required by every
//     subsequent WaitForSingleObject/GetExitCodeProcess/TerminateProcess
//     call and closed exactly once when the handle is no longer needed
type platformHandle struct {
	handle windows.Handle
}

// releaseHandle closes the process HANDLE exactly once, once the child
// has been reaped and it is no longer needed by wait/signal
func releaseHandle(sys platformHandle) { windows.CloseHandle(sys.handle) }
