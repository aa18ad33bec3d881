/*
© 2025–present 2000jedi
ISC License
*/

package pexecutil

import (
	"io"
	"strings"
	"sync"
)

// StringSink is an [io.WriteCloser] that accumulates everything written
// to it into a string, safe for a copy-thread to write to concurrently
// with the owner reading [StringSink.String]
type StringSink struct {
	lock sync.Mutex
	b    strings.Builder
}

// NewStringSink returns a ready-to-use [StringSink]
func NewStringSink() (s *StringSink) { return &StringSink{} }

var _ io.WriteCloser = &StringSink{}

func (s *StringSink) Write(p []byte) (n int, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.b.Write(p)
}

// Close is a no-op; a StringSink accumulates for its entire lifetime
func (s *StringSink) Close() error { return nil }

// String returns everything written so far
func (s *StringSink) String() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.b.String()
}
