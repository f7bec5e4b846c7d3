// Package execshell provides structured helpers for invoking git.
//
// ShellExecutor wraps a CommandRunner with zap logging and lifecycle
// notifications, OSCommandRunner runs processes through os/exec, and the typed
// errors separate processes that could not start from processes that exited
// with a non-zero status.
package execshell
