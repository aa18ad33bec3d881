/*
© 2025–present 2000jedi
ISC License
*/

// Command psh is a small demonstration CLI exercising create, wait,
// communicate and pipeline end-to-end. It is not part of the library's
// tested contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2000jedi/rust-subprocess/subprocess"
	"github.com/haraldrudell/parl/perrors"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, perrors.Short(err))
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	if len(args) == 0 {
		return perrors.New("usage: psh <run|capture|pipe> ...")
	}
	switch args[0] {
	case "run":
		return runCmd(args[1:])
	case "capture":
		return captureCmd(args[1:])
	case "pipe":
		return pipeCmd(args[1:])
	default:
		return perrors.ErrorfPF("unknown subcommand %q", args[0])
	}
}

// psh run <argv...>: spawns argv inheriting the terminal, waits, and
// reports the exit status
func runCmd(argv []string) (err error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	if err = fs.Parse(argv); err != nil {
		return
	}
	if fs.NArg() == 0 {
		return perrors.New("usage: psh run <argv...>")
	}

	status, err := subprocess.Command(fs.Args()...).Join()
	if err != nil {
		return
	}
	fmt.Println(status.String())
	if !status.Success() {
		os.Exit(1)
	}
	return
}

// psh capture <argv...>: spawns argv with stdout/stderr piped and
// prints both once the child exits
//   - -stdin text takes precedence; otherwise, if psh's own stdin is not
//     a terminal, its full contents are read and forwarded to the child
func captureCmd(argv []string) (err error) {
	fs := flag.NewFlagSet("capture", flag.ContinueOnError)
	var input = fs.String("stdin", "", "text to deliver on the child's stdin")
	if err = fs.Parse(argv); err != nil {
		return
	}
	if fs.NArg() == 0 {
		return perrors.New("usage: psh capture [-stdin text] <argv...>")
	}

	cmd := subprocess.Command(fs.Args()...)
	switch {
	case *input != "":
		cmd = cmd.Stdin([]byte(*input))
	case !subprocess.StdinIsTerminal():
		var piped []byte
		if piped, err = io.ReadAll(os.Stdin); err != nil {
			return perrors.ErrorfPF("reading psh's own stdin: %w", err)
		}
		cmd = cmd.Stdin(piped)
	}
	stdout, stderr, status, err := cmd.Capture(context.Background())
	if err != nil {
		return
	}
	fmt.Print(string(stdout))
	fmt.Fprint(os.Stderr, string(stderr))
	fmt.Println(status.String())
	return
}

// psh pipe <argv...> -- <argv...> [-- <argv...> ...]: joins two or more
// commands into a pipeline and reports the last stage's exit status
func pipeCmd(argv []string) (err error) {
	var stages [][]string
	var current []string
	for _, a := range argv {
		if a == "--" {
			stages = append(stages, current)
			current = nil
			continue
		}
		current = append(current, a)
	}
	stages = append(stages, current)
	if len(stages) < 2 {
		return perrors.New("usage: psh pipe <argv...> -- <argv...> [-- <argv...> ...]")
	}

	cmds := make([]*subprocess.Exec, len(stages))
	for i, s := range stages {
		if len(s) == 0 {
			return perrors.ErrorfPF("empty pipeline stage %d", i)
		}
		cmds[i] = subprocess.Command(s...)
	}
	status, err := subprocess.NewPipeline(cmds...).Join()
	if err != nil {
		return
	}
	fmt.Println(strings.TrimSpace(status.String()))
	return
}
