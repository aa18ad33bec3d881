//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

// platformHandle holds the platform-specific state a [ProcessHandle]
// needs beyond the pid
//   - POSIX: the pid alone is enough to wait4/kill
type platformHandle struct{}

// releaseHandle is a no-op on POSIX: there is no separate kernel object
// to close beyond the pid, which unix.Wait4 already reaps
func releaseHandle(_ platformHandle) {}
