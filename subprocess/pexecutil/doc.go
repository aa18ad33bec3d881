/*
© 2025–present 2000jedi
ISC License
*/

// Package pexecutil provides small io.Writer/io.Closer adapters for
// streaming a child process' output without buffering it all in memory,
// for callers that want more than [subprocess.ProcessHandle.CommunicateBytes]'s
// read-to-EOF contract.
package pexecutil
