/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"time"

	gosysinfo "github.com/elastic/go-sysinfo"
)

// StartTime returns the child's process start time, queried directly
// from the OS process table by pid rather than recorded by this library
// at spawn time
//   - the handle's pid is queried even after the exit status has been
//     recorded or the handle has been [ProcessHandle.Detach]'d
//   - fails once the OS process table has no entry for that pid; if the
//     pid has been reused by an unrelated process, that process' start
//     time is returned
func (h *ProcessHandle) StartTime() (t time.Time, err error) {
	h.mu.Lock()
	pid := h.pid
	h.mu.Unlock()

	proc, perr := gosysinfo.Process(pid)
	if perr != nil {
		err = ioError("process start time", perr)
		return
	}
	info, ierr := proc.Info()
	if ierr != nil {
		err = ioError("process start time", ierr)
		return
	}
	t = info.StartTime
	return
}
