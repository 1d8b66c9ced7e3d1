// Darwin (macOS) terminal probe via the TIOCGETA ioctl.

//go:build darwin

package tty

import "golang.org/x/sys/unix"

func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA)
	return err == nil
}
