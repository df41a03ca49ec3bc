//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"os"

	"golang.org/x/sys/unix"
)

// withEchoDisabled turns off terminal echo for the duration of read.
func withEchoDisabled(terminal *os.File, read func() error) error {
	fd := int(terminal.Fd())
	termios, err := unix.IoctlGetTermios(fd, termiosReadRequest)
	if err != nil {
		return errNotTerminal
	}
	original := *termios
	silent := original
	silent.Lflag &^= unix.ECHO

	if err := unix.IoctlSetTermios(fd, termiosWriteRequest, &silent); err != nil {
		return err
	}
	defer func() {
		_ = unix.IoctlSetTermios(fd, termiosWriteRequest, &original)
	}()
	return read()
}
