/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import "os"

// redirectKind is the tag of a [Redirection] variant
type redirectKind uint8

const (
	// redirectInherit: the child inherits the parent's corresponding stream
	redirectInherit redirectKind = iota
	// redirectPipe: an anonymous pipe is allocated, the parent retains one end
	redirectPipe
	// redirectFile: an already-open file is installed as the child's stream;
	// ownership transfers into the Redirection
	redirectFile
	// redirectMerge: for stdout, duplicate stderr into stdout; for stderr,
	// duplicate stdout into stderr. Invalid for stdin
	redirectMerge
)

// Redirection is the declarative policy for one of a child's standard
// streams
//   - the zero value is [Inherit]
//   - construct with [Inherit], [ToPipe], [ToFile] or [Merged]
type Redirection struct {
	kind redirectKind
	file *os.File
}

// Inherit makes the child inherit the parent's corresponding stream
func Inherit() Redirection { return Redirection{kind: redirectInherit} }

// ToPipe allocates an anonymous pipe; the parent retains one end as the
// corresponding field on [ProcessHandle]
func ToPipe() Redirection { return Redirection{kind: redirectPipe} }

// ToFile installs f as the child's stream
//   - ownership of f transfers to the returned [Redirection]: once used
//     in a successful [Create] call, f is closed on the parent side
func ToFile(f *os.File) Redirection { return Redirection{kind: redirectFile, file: f} }

// Merged requests that this stream be a duplicate of the other standard
// stream inside the child
//   - for stdout: duplicate stderr into stdout
//   - for stderr: duplicate stdout into stderr
//   - invalid for stdin: rejected by [Create] with [ErrMergeStdin]
func Merged() Redirection { return Redirection{kind: redirectMerge} }

// Redirections is the (stdin, stdout, stderr) policy triple consumed by
// [Create]
type Redirections struct {
	Stdin  Redirection
	Stdout Redirection
	Stderr Redirection
}

// InheritAll is the all-Inherit default: the child shares the parent's
// console exactly as a shell-launched program would
var InheritAll = Redirections{Stdin: Inherit(), Stdout: Inherit(), Stderr: Inherit()}

// AllPiped requests a pipe for every stream, the configuration
// [ProcessHandle.CommunicateBytes] is built for
var AllPiped = Redirections{Stdin: ToPipe(), Stdout: ToPipe(), Stderr: ToPipe()}
