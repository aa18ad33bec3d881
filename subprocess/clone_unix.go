//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import "os"

// cloneStandardStream returns std unchanged
//   - POSIX has nothing analogous to Windows' process-wide standard
//     handles: a child receives its stdio via dup2 onto fd 0/1/2 from
//     whatever fd [spawn] hands the kernel, so handing the kernel the
//     parent's own *os.File for [Inherit] never mutates anything the
//     parent itself observes
func cloneStandardStream(std *os.File) (*os.File, error) { return std, nil }
