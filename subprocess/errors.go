/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"errors"
	"strings"

	"github.com/haraldrudell/parl/perrors"
	"github.com/haraldrudell/parl/psyscall"
)

// ErrSpawn is the sentinel for the SpawnError kind: the OS failed to
// create the process, or execvp/CreateProcess reported a specific
// failure before the child was considered running
var ErrSpawn = errors.New("spawn error")

// ErrIo is the sentinel for the IoError kind: any other failure of an
// OS primitive during pipe creation, stream i/o, wait or signal delivery
var ErrIo = errors.New("i/o error")

// ErrLogic is the sentinel for the LogicError kind: a programmatic
// misuse detected at runtime
var ErrLogic = errors.New("logic error")

// ErrDecode is the sentinel for the DecodeError kind: UTF-8 decoding
// failure in Communicate
var ErrDecode = errors.New("decode error")

// ErrArgsEmpty indicates argv did not contain a command
var ErrArgsEmpty = errors.New("argv list empty")

// ErrMergeStdin indicates Merge was used for the stdin redirection,
// which has no meaning: stdin has only one stream to merge with
var ErrMergeStdin = errors.New("Merge is invalid for stdin")

// spawnError wraps err as a SpawnError, annotating it with the argv
// that failed to launch
//   - if err is a POSIX ENOENT, the message calls out "no such command"
//     so callers can distinguish this from a launched-then-failing child
func spawnError(argv []string, err error) (e error) {
	if psyscall.IsENOENT(err) {
		return perrors.ErrorfPF("%w: no such command %q: %w", ErrSpawn, strings.Join(argv, "\x20"), err)
	}
	return perrors.ErrorfPF("%w: %q: %w", ErrSpawn, strings.Join(argv, "\x20"), err)
}

// ioError wraps err as an IoError with a short operation label
func ioError(op string, err error) (e error) {
	if err == nil {
		return nil
	}
	return perrors.ErrorfPF("%w: %s: %w", ErrIo, op, err)
}

// logicError returns a LogicError carrying a static message
func logicError(message string) (e error) {
	return perrors.ErrorfPF("%w: %s", ErrLogic, message)
}

// decodeError wraps a UTF-8 decoding failure for a named stream
func decodeError(stream string, err error) (e error) {
	return perrors.ErrorfPF("%w: %s: %w", ErrDecode, stream, err)
}
