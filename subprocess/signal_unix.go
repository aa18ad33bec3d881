//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import "golang.org/x/sys/unix"

// sendSignal delivers sig to pid
func sendSignal(pid int, sig unix.Signal) error {
	if err := unix.Kill(pid, sig); err != nil {
		return ioError("kill", err)
	}
	return nil
}

func terminateProcess(pid int, _ platformHandle) error { return sendSignal(pid, unix.SIGTERM) }

func killProcess(pid int, _ platformHandle) error { return sendSignal(pid, unix.SIGKILL) }
