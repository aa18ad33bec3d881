/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"os"

	"golang.org/x/term"
)

// StdinIsTerminal reports whether the calling process' own stdin is
// attached to a terminal
//   - useful before choosing [Inherit] for a child's stdin interactively
//     versus treating the parent's stdin as a byte stream to forward
//     via [ProcessHandle.CommunicateBytes]
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
