// Fallback for platforms without a terminal probe.

//go:build !darwin && !linux

package tty

func isTerminal(fd uintptr) bool { return false }
