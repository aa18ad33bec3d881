/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"bytes"
	"context"
	"os"
)

// Exec is a fluent accumulator over [Config]
//   - construct with [Command], then chain Arg/Args/Env/Dir/Stdin
//   - a terminal operation (Popen, Join, Capture, StreamStdout,
//     StreamStderr) translates the accumulator into one [Create] call
//   - Exec is not safe for concurrent use and is single-shot: a
//     terminal operation consumes it
type Exec struct {
	argv       []string
	env        []string
	dir        string
	redir      Redirections
	stdinInput []byte
	hasInput   bool
}

// Command starts a new [Exec] accumulator for the given argv
func Command(argv ...string) *Exec {
	return &Exec{argv: argv, redir: InheritAll}
}

// Arg appends a single argument
func (e *Exec) Arg(a string) *Exec { e.argv = append(e.argv, a); return e }

// Args appends multiple arguments
func (e *Exec) Args(a ...string) *Exec { e.argv = append(e.argv, a...); return e }

// Env replaces the child's environment; nil (the default) inherits the
// calling process' environment
func (e *Exec) Env(env []string) *Exec { e.env = env; return e }

// Dir sets the child's working directory
func (e *Exec) Dir(dir string) *Exec { e.dir = dir; return e }

// Stdin provides input bytes to be delivered via [Exec.Capture]'s
// internal communicate call
//   - using Stdin and then calling any terminal operation other than
//     Capture is a programmer error and panics
func (e *Exec) Stdin(input []byte) *Exec {
	e.stdinInput, e.hasInput = input, true
	return e
}

// config builds the [Config] this accumulator currently describes
func (e *Exec) config() Config {
	return Config{Argv: e.argv, Env: e.env, Dir: e.dir, Redirections: e.redir}
}

// Popen spawns the child and returns its handle without waiting
//   - panics if [Exec.Stdin] input was provided: popen is non-capturing
func (e *Exec) Popen() (h *ProcessHandle, err error) {
	e.rejectPendingInput("Popen")
	return Create(e.config())
}

// Join spawns the child and blocks until it exits, returning its
// [ExitStatus]
//   - panics if [Exec.Stdin] input was provided: join is non-capturing
func (e *Exec) Join() (status ExitStatus, err error) {
	e.rejectPendingInput("Join")
	var h *ProcessHandle
	if h, err = Create(e.config()); err != nil {
		return
	}
	return h.Wait()
}

// StreamStdout spawns the child with stdout piped and returns the
// handle so the caller can read it incrementally
//   - panics if [Exec.Stdin] input was provided: streaming is non-capturing
func (e *Exec) StreamStdout() (h *ProcessHandle, err error) {
	e.rejectPendingInput("StreamStdout")
	e.redir.Stdout = ToPipe()
	return Create(e.config())
}

// StreamStderr spawns the child with stderr piped and returns the
// handle so the caller can read it incrementally
func (e *Exec) StreamStderr() (h *ProcessHandle, err error) {
	e.rejectPendingInput("StreamStderr")
	e.redir.Stderr = ToPipe()
	return Create(e.config())
}

// Capture spawns the child with stdout and stderr piped (and stdin
// piped if input was provided), communicates to completion, and
// returns the captured output and final status
func (e *Exec) Capture(ctx context.Context) (stdout, stderr []byte, status ExitStatus, err error) {
	e.redir.Stdout, e.redir.Stderr = ToPipe(), ToPipe()
	if e.hasInput {
		e.redir.Stdin = ToPipe()
	}
	var h *ProcessHandle
	if h, err = Create(e.config()); err != nil {
		return
	}
	if stdout, stderr, err = h.CommunicateBytes(ctx, e.stdinInput); err != nil {
		return
	}
	status, _ = h.Poll()
	return
}

func (e *Exec) rejectPendingInput(op string) {
	if e.hasInput {
		panic("subprocess: Stdin input provided but " + op + " does not capture output")
	}
}

// Pipeline is two or more [Exec] accumulators joined left-to-right,
// each adjacent pair sharing an OS pipe: stage i's stdout becomes
// stage i+1's stdin
type Pipeline struct {
	stages []*Exec
}

// NewPipeline joins stages left-to-right; fewer than two stages panics
func NewPipeline(stages ...*Exec) *Pipeline {
	if len(stages) < 2 {
		panic("subprocess: a pipeline needs at least two stages")
	}
	return &Pipeline{stages: stages}
}

// pipelineHandles spawns every stage, wiring each pair with an OS pipe
//   - captureStderr installs a single shared pipe as stderr on every
//     stage, per [Pipeline.Capture]'s contract
func (p *Pipeline) pipelineHandles(captureStderr, captureLastStdout bool) (handles []*ProcessHandle, stderrR *os.File, err error) {
	var sharedStderrW *os.File
	if captureStderr {
		var pipe endpointPipe
		if pipe, err = makePipe(); err != nil {
			return
		}
		sharedStderrW, stderrR = pipe.Write, pipe.Read
		defer closeAll(sharedStderrW)
	}

	var prevStdout *os.File
	handles = make([]*ProcessHandle, 0, len(p.stages))
	for i, stage := range p.stages {
		redir := stage.redir
		if i > 0 {
			redir.Stdin = ToFile(prevStdout)
		}
		if i < len(p.stages)-1 || captureLastStdout {
			redir.Stdout = ToPipe()
		}
		if captureStderr {
			var dup *os.File
			if dup, err = dupFile(sharedStderrW); err != nil {
				for _, prior := range handles {
					prior.Kill()
					prior.Wait()
				}
				return
			}
			redir.Stderr = ToFile(dup)
		}
		stage.redir = redir

		var h *ProcessHandle
		if h, err = Create(stage.config()); err != nil {
			for _, prior := range handles {
				prior.Kill()
				prior.Wait()
			}
			if captureStderr {
				closeAll(stderrR)
			}
			return
		}
		handles = append(handles, h)
		prevStdout = h.Stdout
	}
	return
}

// Join spawns every stage and blocks until all exit, returning the
// exit status of the last stage
//   - invalid argv for any stage fails the whole pipeline
func (p *Pipeline) Join() (status ExitStatus, err error) {
	var handles []*ProcessHandle
	if handles, _, err = p.pipelineHandles(false, false); err != nil {
		return
	}
	for i, h := range handles {
		var s ExitStatus
		var werr error
		if s, werr = h.Wait(); werr != nil && err == nil {
			err = werr
		}
		if i == len(handles)-1 {
			status = s
		}
	}
	return
}

// Capture spawns every stage with a shared stderr pipe across all
// stages and the last stage's stdout piped, communicates the last
// stage's output to completion, and returns the combined stderr, the
// last stage's stdout, and its exit status
func (p *Pipeline) Capture(ctx context.Context) (stdout, stderr []byte, status ExitStatus, err error) {
	var handles []*ProcessHandle
	var stderrR *os.File
	if handles, stderrR, err = p.pipelineHandles(true, true); err != nil {
		return
	}

	// the shared stderr pipe is drained on its own goroutine, concurrently
	// with draining the last stage's stdout: either stream can fill up
	// and block its writer while the other is still being read
	stderrDone := make(chan []byte, 1)
	go func() {
		var buf bytes.Buffer
		buf.ReadFrom(stderrR)
		stderrR.Close()
		stderrDone <- buf.Bytes()
	}()

	last := handles[len(handles)-1]
	if stdout, _, err = last.CommunicateBytes(ctx, nil); err != nil {
		stderr = <-stderrDone
		return
	}
	for _, h := range handles {
		if h == last {
			continue
		}
		h.Wait()
	}
	stderr = <-stderrDone
	status, _ = last.Poll()
	return
}
