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

// dupFile returns an independently closable duplicate of f's handle,
// the Windows counterpart of the unix dup(2)-based helper of the same
// name
func dupFile(f *os.File) (dup *os.File, err error) {
	proc := windows.CurrentProcess()
	var h windows.Handle
	if err = windows.DuplicateHandle(proc, windows.Handle(f.Fd()), proc, &h, 0, true, windows.DUPLICATE_SAME_ACCESS); err != nil {
		err = ioError("DuplicateHandle", err)
		return
	}
	dup = os.NewFile(uintptr(h), f.Name())
	return
}
