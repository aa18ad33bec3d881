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

// cloneStandardStream duplicates std into a new, independently-owned,
// already-inheritable handle
//   - unlike POSIX, a Windows [Inherit] cannot simply hand the child the
//     parent's own standard handle: the only way to make a handle
//     inheritable is [windows.SetHandleInformation], and calling that on
//     os.Stdin/os.Stdout/os.Stderr directly would permanently flip the
//     inheritability of the running process' own stdio as a side effect
//     of spawning a child. Duplicating it first, mirroring dup_windows.go's
//     [dupFile], gives spawn_windows.go a handle it owns and may mark
//     inheritable, close, or otherwise dispose of without touching std
func cloneStandardStream(std *os.File) (*os.File, error) {
	proc := windows.CurrentProcess()
	var dup windows.Handle
	err := windows.DuplicateHandle(proc, windows.Handle(std.Fd()), proc, &dup, 0, true, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return nil, ioError("clone_standard_stream", err)
	}
	return os.NewFile(uintptr(dup), std.Name()), nil
}
