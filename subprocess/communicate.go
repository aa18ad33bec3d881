/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"bytes"
	"context"
	"sync"
	"unicode/utf8"

	"github.com/haraldrudell/parl"
	"github.com/haraldrudell/parl/perrors"
)

// CommunicateBytes writes input to the child's stdin if it was piped,
// then reads stdout and stderr to completion, then waits for the child
// to exit
//   - avoids the classic pipe-buffer deadlock: a child that fills its
//     stdout pipe while waiting for more stdin can never be served by a
//     parent that writes all of stdin before reading any of stdout, so
//     with two or more piped streams, each piped stream is served on
//     its own goroutine rather than sequentially
//   - with at most one piped stream, the copy runs on the calling
//     goroutine directly: no goroutine, no WaitGroup, nothing to
//     synchronize
//   - input is ignored if stdin was not piped; stdin is closed after
//     input is written so the child observes EOF
func (h *ProcessHandle) CommunicateBytes(ctx context.Context, input []byte) (stdout, stderr []byte, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var execCtx = parl.NewCancelContext(ctx)

	var pipedCount int
	if h.Stdin != nil {
		pipedCount++
	}
	if h.Stdout != nil {
		pipedCount++
	}
	if h.Stderr != nil {
		pipedCount++
	}

	var outBuf, errBuf bytes.Buffer
	if pipedCount <= 1 {
		err = h.communicateDirect(input, &outBuf, &errBuf)
	} else {
		err = h.communicateConcurrent(execCtx, input, &outBuf, &errBuf)
	}
	stdout, stderr = outBuf.Bytes(), errBuf.Bytes()
	if err != nil {
		return
	}

	_, err = h.Wait()
	return
}

// communicateDirect handles the 0-or-1-piped-stream case without
// spawning any goroutine
func (h *ProcessHandle) communicateDirect(input []byte, outBuf, errBuf *bytes.Buffer) (err error) {
	switch {
	case h.Stdin != nil:
		if _, werr := h.Stdin.Write(input); werr != nil {
			err = ioError("stdin write", werr)
		}
		if cerr := h.Stdin.Close(); cerr != nil && err == nil {
			err = ioError("stdin close", cerr)
		}
	case h.Stdout != nil:
		if _, rerr := outBuf.ReadFrom(h.Stdout); rerr != nil {
			err = ioError("stdout read", rerr)
		}
		if cerr := h.Stdout.Close(); cerr != nil && err == nil {
			err = ioError("stdout close", cerr)
		}
	case h.Stderr != nil:
		if _, rerr := errBuf.ReadFrom(h.Stderr); rerr != nil {
			err = ioError("stderr read", rerr)
		}
		if cerr := h.Stderr.Close(); cerr != nil && err == nil {
			err = ioError("stderr close", cerr)
		}
	}
	return
}

// communicateConcurrent handles 2 or 3 piped streams with one
// copy-thread per stream, joined by a scoped [sync.WaitGroup], matching
// the copy-thread pool used for streaming command execution
func (h *ProcessHandle) communicateConcurrent(ctx context.Context, input []byte, outBuf, errBuf *bytes.Buffer) (err error) {
	var wg sync.WaitGroup
	var errs parl.ErrSlice

	if h.Stdin != nil {
		wg.Add(1)
		go copyStdinThread(input, h.Stdin, &errs, ctx, &wg)
	}
	if h.Stdout != nil {
		wg.Add(1)
		go copyThread("stdout", h.Stdout, outBuf, &errs, ctx, &wg)
	}
	if h.Stderr != nil {
		wg.Add(1)
		go copyThread("stderr", h.Stderr, errBuf, &errs, ctx, &wg)
	}
	wg.Wait()
	errs.AppendErrors(&err)
	return
}

// Communicate is the string-oriented form of [ProcessHandle.CommunicateBytes]
//   - input and the returned stdout/stderr are UTF-8 text
//   - if either stream's bytes are not valid UTF-8, [ErrDecode] is
//     returned; the other stream's bytes are still discarded, since a
//     half-decoded communicate result is not a useful value to return
func (h *ProcessHandle) Communicate(ctx context.Context, input string) (stdout, stderr string, err error) {
	var outBytes, errBytes []byte
	if outBytes, errBytes, err = h.CommunicateBytes(ctx, []byte(input)); err != nil {
		return
	}
	if !utf8.Valid(outBytes) {
		err = decodeError("stdout", perrors.New("invalid UTF-8"))
		return
	}
	if !utf8.Valid(errBytes) {
		err = decodeError("stderr", perrors.New("invalid UTF-8"))
		return
	}
	stdout, stderr = string(outBytes), string(errBytes)
	return
}
