//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import "golang.org/x/sys/unix"

// exitStatusFromWaitStatus derives an [ExitStatus] from a POSIX
// wait(2) status word
//   - WIFEXITED: Exited(WEXITSTATUS)
//   - WIFSIGNALED: Signaled(WTERMSIG)
//   - otherwise: Other(raw)
func exitStatusFromWaitStatus(ws unix.WaitStatus) ExitStatus {
	switch {
	case ws.Exited():
		return exitedStatus(uint32(ws.ExitStatus()))
	case ws.Signaled():
		return signaledStatus(uint8(ws.Signal()))
	default:
		return otherStatus(int32(ws))
	}
}
