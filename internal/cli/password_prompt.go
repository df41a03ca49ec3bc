package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	errNotTerminal      = errors.New("password prompt needs an interactive terminal")
	errPasswordMismatch = errors.New("passwords do not match")
)

// promptNewPassword asks twice without echo and returns the confirmed value.
func promptNewPassword(terminal *os.File, out io.Writer) (string, error) {
	if terminal == nil {
		return "", errNotTerminal
	}
	reader := bufio.NewReader(terminal)

	first, err := promptHidden(terminal, reader, out, "New password: ")
	if err != nil {
		return "", err
	}
	second, err := promptHidden(terminal, reader, out, "Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordMismatch
	}
	return first, nil
}

func promptHidden(terminal *os.File, reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	var line string
	err := withEchoDisabled(terminal, func() error {
		var readErr error
		line, readErr = readLine(reader)
		return readErr
	})
	fmt.Fprintln(out)
	return line, err
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
