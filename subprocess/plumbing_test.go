//go:build unix

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"bytes"
	"errors"
	"testing"
)

func TestPlanStreamsRejectsMergeStdin(t *testing.T) {
	_, err := planStreams(Redirections{Stdin: Merged(), Stdout: Inherit(), Stderr: Inherit()})
	if !errors.Is(err, ErrMergeStdin) {
		t.Errorf("planStreams bad err: %v exp wrapping: %v", err, ErrMergeStdin)
	}
}

func TestPlanStreamsRejectsDoubleMerge(t *testing.T) {
	_, err := planStreams(Redirections{Stdin: Inherit(), Stdout: Merged(), Stderr: Merged()})
	if err == nil {
		t.Fatal("planStreams missing err for stdout+stderr both Merge")
	}
}

func TestMergeStderrIntoStdout(t *testing.T) {
	h, err := Create(Config{
		Argv: []string{"sh", "-c", "echo out; echo err 1>&2"},
		Redirections: Redirections{
			Stdin:  Inherit(),
			Stdout: ToPipe(),
			Stderr: Merged(),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	var buf bytes.Buffer
	if _, err = buf.ReadFrom(h.Stdout); err != nil {
		t.Fatalf("read merged stdout: %v", err)
	}
	if _, err = h.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	got := buf.String()
	if !bytes.Contains([]byte(got), []byte("out")) || !bytes.Contains([]byte(got), []byte("err")) {
		t.Errorf("merged output missing a stream's text: %q", got)
	}
}
