/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/haraldrudell/parl"
	"github.com/haraldrudell/parl/perrors"
)

// copyThread copies from reader to writer until EOF, closes reader, and
// reports any failure to errs rather than to a return value
//   - label identifies the stream for panic and error messages
//   - on panic or copy error, ctx is canceled; the sibling copy-threads
//     do not observe ctx and each still runs until its own stream ends
//   - closing a pipe out from under an in-flight [io.Copy] is an expected
//     race when the child exits quickly: fs.ErrClosed is swallowed
//   - reader is closed once drained, so the parent-retained endpoint is
//     dropped the moment its transfer completes rather than outliving
//     the communicate call
func copyThread(label string, reader io.ReadCloser, writer io.Writer, errs parl.ErrorSink, ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	var err error
	defer parl.CancelOnError(&err, ctx)
	defer parl.Recover("communicate "+label, &err, errs.AddError)

	if _, err = io.Copy(writer, reader); perrors.Is(&err, "%s io.Copy %w", label, err) {
		if errors.Is(err, fs.ErrClosed) {
			err = nil
		}
	}
	if cerr := reader.Close(); cerr != nil && err == nil && !errors.Is(cerr, fs.ErrClosed) {
		err = perrors.ErrorfPF("%s close %w", label, cerr)
	}
}

// copyStdinThread writes input to f then closes f, so the child observes
// EOF on its stdin exactly once the write completes
func copyStdinThread(input []byte, f *os.File, errs parl.ErrorSink, ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	var err error
	defer parl.CancelOnError(&err, ctx)
	defer parl.Recover("communicate stdin", &err, errs.AddError)

	if _, err = io.Copy(f, bytes.NewReader(input)); perrors.Is(&err, "stdin io.Copy %w", err) {
		if errors.Is(err, fs.ErrClosed) {
			err = nil
		}
	}
	if cerr := f.Close(); cerr != nil && err == nil {
		err = perrors.ErrorfPF("stdin close %w", cerr)
	}
}
