/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import "os"

// streamPlumbing is the outcome of resolving a [Redirections] triple: the
// three file handles the child process receives, the ends the parent
// retains as [ProcessHandle] fields, and the set of handles the parent
// must close once the child has been spawned
//   - the stream-resolution algorithm below produces exactly this shape
//     on every platform; only how a *os.File becomes "the child's fd 1"
//     or "STARTUPINFO.hStdOutput" differs, and that lives in
//     spawn_unix.go / spawn_windows.go
type streamPlumbing struct {
	ChildStdin, ChildStdout, ChildStderr   *os.File
	ParentStdin, ParentStdout, ParentStderr *os.File
	// closeAfterSpawn are files the parent must close once the child has
	// been started, regardless of outcome: the child-side end of every
	// pipe, and every ToFile target (ownership transferred by contract)
	closeAfterSpawn []*os.File
}

// planStreams resolves r into a [streamPlumbing]
//   - Merge on stdin is always rejected: [ErrMergeStdin]
//   - Merge on both stdout and stderr simultaneously is rejected:
//     [ErrLogic] since neither side has anything concrete to merge into
func planStreams(r Redirections) (sp streamPlumbing, err error) {
	if r.Stdin.kind == redirectMerge {
		err = ErrMergeStdin
		return
	}
	if r.Stdout.kind == redirectMerge && r.Stderr.kind == redirectMerge {
		err = logicError("stdout and stderr cannot both be Merge")
		return
	}

	if sp.ChildStdin, sp.ParentStdin, err = resolveStream(r.Stdin, os.Stdin, &sp.closeAfterSpawn); err != nil {
		return
	}

	switch {
	case r.Stdout.kind == redirectMerge:
		// resolve stderr first, then mirror it onto stdout
		if sp.ChildStderr, sp.ParentStderr, err = resolveStream(r.Stderr, os.Stderr, &sp.closeAfterSpawn); err != nil {
			return
		}
		sp.ChildStdout = sp.ChildStderr
	case r.Stderr.kind == redirectMerge:
		if sp.ChildStdout, sp.ParentStdout, err = resolveStream(r.Stdout, os.Stdout, &sp.closeAfterSpawn); err != nil {
			return
		}
		sp.ChildStderr = sp.ChildStdout
	default:
		if sp.ChildStdout, sp.ParentStdout, err = resolveStream(r.Stdout, os.Stdout, &sp.closeAfterSpawn); err != nil {
			return
		}
		if sp.ChildStderr, sp.ParentStderr, err = resolveStream(r.Stderr, os.Stderr, &sp.closeAfterSpawn); err != nil {
			return
		}
	}
	return
}

// resolveStream resolves a single non-Merge [Redirection] into the file
// the child receives and, for Pipe, the end the parent retains
func resolveStream(r Redirection, inherited *os.File, closeAfterSpawn *[]*os.File) (child, parent *os.File, err error) {
	switch r.kind {
	case redirectInherit:
		if child, err = cloneStandardStream(inherited); err != nil {
			return
		}
		// on Windows cloneStandardStream returns a distinct owned handle
		// that must be closed once the child has it; on POSIX it returns
		// inherited itself, which must never be closed here
		if child != inherited {
			*closeAfterSpawn = append(*closeAfterSpawn, child)
		}
	case redirectFile:
		child = r.file
		*closeAfterSpawn = append(*closeAfterSpawn, r.file)
	case redirectPipe:
		var p endpointPipe
		if p, err = makePipe(); err != nil {
			return
		}
		if inherited == os.Stdin {
			child, parent = p.Read, p.Write
			*closeAfterSpawn = append(*closeAfterSpawn, p.Read)
		} else {
			child, parent = p.Write, p.Read
			*closeAfterSpawn = append(*closeAfterSpawn, p.Write)
		}
	default:
		err = logicError("unresolved redirection kind")
	}
	return
}

// closeSpawnEnds closes every handle planStreams marked for parent-side
// closure, aggregating the first error encountered
func (sp *streamPlumbing) closeSpawnEnds() error {
	return closeAll(sp.closeAfterSpawn...)
}

// closeParentEnds closes the pipe ends the parent retained, used on the
// rollback path when spawning failed after pipes were already created
func (sp *streamPlumbing) closeParentEnds() error {
	return closeAll(sp.ParentStdin, sp.ParentStdout, sp.ParentStderr)
}
