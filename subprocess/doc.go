/*
© 2025–present 2000jedi
ISC License
*/

// Package subprocess spawns external programs, wires their standard
// streams according to a declarative redirection policy, observes their
// life cycle and delivers bulk input/output without deadlock.
//
//   - [Create] spawns a child process described by argv and a
//     [Redirections] triple and returns an owned [ProcessHandle]
//   - [ProcessHandle.Poll], [ProcessHandle.Wait] and
//     [ProcessHandle.WaitTimeout] observe the child's life cycle
//   - [ProcessHandle.Terminate] and [ProcessHandle.Kill] deliver
//     termination
//   - [ProcessHandle.CommunicateBytes] and [ProcessHandle.Communicate]
//     feed stdin while draining stdout and stderr to completion
//
// The package has no event loop and no pseudo-terminal support: every
// blocking operation blocks the calling goroutine, and concurrency is
// limited to the small, scoped worker pool used by the communicator and
// the one goroutine [Pipeline.Capture] uses to drain the shared stderr
// pipe.
package subprocess
