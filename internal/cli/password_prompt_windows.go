//go:build windows

package cli

import (
	"os"

	"golang.org/x/sys/windows"
)

func withEchoDisabled(terminal *os.File, read func() error) error {
	handle := windows.Handle(terminal.Fd())
	var original uint32
	if err := windows.GetConsoleMode(handle, &original); err != nil {
		return errNotTerminal
	}

	if err := windows.SetConsoleMode(handle, original&^windows.ENABLE_ECHO_INPUT); err != nil {
		return err
	}
	defer func() {
		_ = windows.SetConsoleMode(handle, original)
	}()
	return read()
}
