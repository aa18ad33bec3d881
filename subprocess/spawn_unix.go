//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"os"
	"os/exec"
	"syscall"
)

// spawn starts the child described by c using sp as its resolved stream
// plumbing
//   - delegates the fork/exec/CLOEXEC-error-pipe protocol to
//     [syscall.ForkExec], which already implements exactly the protocol
//     this layer specifies: the child execs with every non-stream fd
//     closed and reports a failed exec back to the parent through an
//     internal pipe rather than leaving a forked-but-not-exec'd process
//     behind
func spawn(c *Config, sp *streamPlumbing) (pid int, sys platformHandle, err error) {
	var argv0 string
	if argv0, err = exec.LookPath(c.Argv[0]); err != nil {
		err = spawnError(c.Argv, err)
		return
	}

	env := c.Env
	if env == nil {
		// syscall.ForkExec treats a nil Env as an empty environment, not
		// as "inherit the parent's", unlike CreateProcess's nil envP on
		// Windows; os/exec.Cmd.environ falls back the same way
		env = os.Environ()
	}

	attr := &syscall.ProcAttr{
		Dir: c.Dir,
		Env: env,
		Files: []uintptr{
			sp.ChildStdin.Fd(),
			sp.ChildStdout.Fd(),
			sp.ChildStderr.Fd(),
		},
	}

	if pid, err = syscall.ForkExec(argv0, c.Argv, attr); err != nil {
		err = spawnError(c.Argv, err)
	}
	return
}
