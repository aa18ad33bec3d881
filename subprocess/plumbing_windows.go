//go:build windows

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"os"

	"golang.org/x/sys/windows"
)

// finalizeForSpawn demotes every parent-retained pipe end to
// non-inheritable and marks every handle the child will receive as
// inheritable
//   - unlike POSIX, a Windows handle is inheritable only if it was
//     created that way or later marked so; [makePipe] creates both ends
//     inheritable, so the parent-retained end is demoted here so that it
//     never leaks into this or any unrelated child, and a
//     [cloneStandardStream] result is already inheritable by
//     construction, so the promotion pass is a no-op for it
//   - CreateProcess only consults STARTUPINFO.hStd* when
//     STARTF_USESTDHANDLES is set together with bInheritHandles=TRUE;
//     every handle named there must be inheritable or the child sees a
//     broken stream, so every child-side handle is promoted here right
//     before spawn_windows.go builds the STARTUPINFO
func (sp *streamPlumbing) finalizeForSpawn() error {
	for _, f := range []*os.File{sp.ParentStdin, sp.ParentStdout, sp.ParentStderr} {
		if f == nil {
			continue
		}
		if err := windows.SetHandleInformation(windows.Handle(f.Fd()), windows.HANDLE_FLAG_INHERIT, 0); err != nil {
			return ioError("SetHandleInformation", err)
		}
	}
	for _, f := range []*os.File{sp.ChildStdin, sp.ChildStdout, sp.ChildStderr} {
		if f == nil {
			continue
		}
		if err := windows.SetHandleInformation(windows.Handle(f.Fd()), windows.HANDLE_FLAG_INHERIT, windows.HANDLE_FLAG_INHERIT); err != nil {
			return ioError("SetHandleInformation", err)
		}
	}
	return nil
}
