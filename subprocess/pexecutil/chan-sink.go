/*
© 2025–present 2000jedi
ISC License
*/

package pexecutil

import (
	"io"
	"io/fs"

	"github.com/haraldrudell/parl"
	"github.com/haraldrudell/parl/perrors"
)

// ChanSink is an [io.WriteCloser] delivering every write as a distinct
// []byte chunk over a channel, for a caller that wants to react to a
// child's output as it arrives rather than read it to completion
type ChanSink struct{ ch parl.AwaitableSlice[[]byte] }

// NewChanSink returns a ready-to-use [ChanSink]
func NewChanSink() (sink *ChanSink) { return &ChanSink{} }

var _ io.WriteCloser = &ChanSink{}

func (c *ChanSink) Write(p []byte) (n int, err error) {
	if c.ch.IsClosed() {
		err = perrors.ErrorfPF(fs.ErrClosed.Error())
		return
	}
	// p's backing array belongs to the copy-thread's buffer: clone it
	clone := make([]byte, len(p))
	copy(clone, p)
	c.ch.Send(clone)
	n = len(p)
	return
}

func (c *ChanSink) Close() error {
	c.ch.Close()
	return nil
}

// Seq ranges over every chunk as it arrives, until Close and drain
func (c *ChanSink) Seq(yield func(chunk []byte) bool) { c.ch.Seq(yield) }
