//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"os"

	"golang.org/x/sys/unix"
)

// dupFile returns an independently closable duplicate of f's descriptor
//   - used when the same open stream (the pipeline's shared stderr
//     write end) must be installed as [ToFile] on more than one stage:
//     each stage takes ownership of, and closes, its own duplicate
func dupFile(f *os.File) (dup *os.File, err error) {
	var fd int
	if fd, err = unix.Dup(int(f.Fd())); err != nil {
		err = ioError("dup", err)
		return
	}
	dup = os.NewFile(uintptr(fd), f.Name())
	return
}
