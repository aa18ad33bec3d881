/*
© 2025–present 2000jedi
ISC License
*/

package pexecutil

import (
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/haraldrudell/parl"
	"github.com/haraldrudell/parl/perrors"
)

// ChanLineSink is an [io.WriteCloser] splitting a child's output into
// lines and delivering each as a distinct string over a channel, for a
// caller that wants to process a child's output line by line as it
// streams in rather than read it to completion
type ChanLineSink struct {
	lock        sync.Mutex
	partial     string
	ch          parl.NBChan[string]
	withNewline bool
}

// NewChanLineSink returns a ready-to-use [ChanLineSink].
// withNewline keeps the trailing "\n" on delivered lines when true
func NewChanLineSink(withNewline bool) (sink *ChanLineSink) {
	return &ChanLineSink{withNewline: withNewline}
}

var _ io.WriteCloser = &ChanLineSink{}

func (c *ChanLineSink) Write(p []byte) (n int, err error) {
	if c.ch.DidClose() {
		err = perrors.ErrorfPF(fs.ErrClosed.Error())
		return
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	s := c.partial + string(p)
	n = len(p)
	for {
		index := strings.IndexByte(s, '\n')
		if index == -1 {
			break
		}
		var cut int
		if c.withNewline {
			cut = index + 1
		} else {
			cut = index
		}
		c.ch.Send(s[:cut])
		s = s[index+1:]
	}
	c.partial = s
	return
}

func (c *ChanLineSink) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.partial != "" {
		c.ch.Send(c.partial)
		c.partial = ""
	}
	c.ch.Close()
	return nil
}

// Ch returns the channel of completed lines
func (c *ChanLineSink) Ch() (lines <-chan string) { return c.ch.Ch() }
