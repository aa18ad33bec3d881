//go:build windows

/*
© 2025–present 2000jedi
ISC License
*/

package subprocess

import (
	"os/exec"
	"strings"

	"golang.org/x/sys/windows"
)

// spawn starts the child described by c using sp as its resolved stream
// plumbing
//   - CreateProcess takes a single command-line string rather than an
//     argument vector, so the vector is re-quoted here following the
//     MSVCRT argv-splitting rules every Windows C runtime since Windows
//     95 has implemented; getting this wrong is the single most common
//     source of "works on POSIX, breaks on Windows" bugs in process
//     launchers
func spawn(c *Config, sp *streamPlumbing) (pid int, sys platformHandle, err error) {
	var appName string
	if appName, err = exec.LookPath(c.Argv[0]); err != nil {
		err = spawnError(c.Argv, err)
		return
	}

	var appNameP, cmdLineP, dirP, envP *uint16
	if appNameP, err = windows.UTF16PtrFromString(appName); err != nil {
		err = spawnError(c.Argv, err)
		return
	}
	if cmdLineP, err = windows.UTF16PtrFromString(quoteCommandLine(c.Argv)); err != nil {
		err = spawnError(c.Argv, err)
		return
	}
	if c.Dir != "" {
		if dirP, err = windows.UTF16PtrFromString(c.Dir); err != nil {
			err = spawnError(c.Argv, err)
			return
		}
	}
	if c.Env != nil {
		if envP, err = windows.UTF16PtrFromString(buildEnvBlock(c.Env)); err != nil {
			err = spawnError(c.Argv, err)
			return
		}
	}

	si := &windows.StartupInfo{
		Flags:     windows.STARTF_USESTDHANDLES,
		StdInput:  windows.Handle(sp.ChildStdin.Fd()),
		StdOutput: windows.Handle(sp.ChildStdout.Fd()),
		StdErr:    windows.Handle(sp.ChildStderr.Fd()),
	}
	pi := &windows.ProcessInformation{}

	var creationFlags uint32 = windows.CREATE_UNICODE_ENVIRONMENT
	if err = windows.CreateProcess(
		appNameP,
		cmdLineP,
		nil, // process security attributes
		nil, // thread security attributes
		true, // inherit handles
		creationFlags,
		envP,
		dirP,
		si,
		pi,
	); err != nil {
		err = spawnError(c.Argv, err)
		return
	}
	windows.CloseHandle(pi.Thread)
	pid = int(pi.ProcessId)
	sys = platformHandle{handle: pi.Process}
	return
}

// quoteCommandLine joins argv into a single command-line string using
// the quoting rules MSVCRT's argv parser (and therefore CommandLineToArgvW
// and most C runtimes) expects
//   - a run of backslashes is only special immediately before a double
//     quote: it is doubled, and one extra backslash is added to escape
//     the quote itself
//   - backslashes not followed by a quote are copied verbatim
//   - an argument is quoted if empty or containing whitespace (space,
//     tab, newline, vertical tab) or a quote
func quoteCommandLine(argv []string) string {
	var b strings.Builder
	for i, arg := range argv {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(quoteWindowsArg(arg))
	}
	return b.String()
}

func quoteWindowsArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n\v\"") {
		return arg
	}
	var b strings.Builder
	b.WriteByte('"')
	slashes := 0
	for _, r := range arg {
		switch r {
		case '\\':
			slashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, slashes*2+1))
			b.WriteByte('"')
			slashes = 0
		default:
			if slashes > 0 {
				b.WriteString(strings.Repeat(`\`, slashes))
				slashes = 0
			}
			b.WriteRune(r)
		}
	}
	b.WriteString(strings.Repeat(`\`, slashes*2))
	b.WriteByte('"')
	return b.String()
}

// buildEnvBlock renders env as a Windows environment block: a sequence
// of NUL-terminated "k=v" strings terminated by an extra NUL
func buildEnvBlock(env []string) string {
	var b strings.Builder
	for _, kv := range env {
		b.WriteString(kv)
		b.WriteByte(0)
	}
	b.WriteByte(0)
	return b.String()
}
