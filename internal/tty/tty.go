// Package tty reports whether a file descriptor is attached to a terminal.
// Detection is best-effort: on platforms without a probe every descriptor is
// reported as not a terminal, so callers fall back to compact output.
package tty

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return isTerminal(fd)
}
