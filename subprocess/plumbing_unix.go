//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

// finalizeForSpawn performs any last platform-specific adjustment to a
// resolved [streamPlumbing] before the child is started
//   - POSIX: nothing to do. [syscall.ForkExec] dup2's each Files[] entry
//     onto fd 0/1/2 in the child after fork, and a freshly dup'd
//     descriptor never carries its original's close-on-exec flag, so
//     the parent's close-on-exec [os.Pipe] ends are never visible to
//     the child regardless of this step
func (sp *streamPlumbing) finalizeForSpawn() error { return nil }
