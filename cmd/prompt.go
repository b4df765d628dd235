// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

// errors
var (
	ErrNoPassword = errors.New("no password given")
	ErrCancelled  = errors.New("operation cancelled")
)

// terminalFd returns the descriptor of the command's input
// if it's an interactive terminal
func terminalFd(cmd *cobra.Command) (int, bool) {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return 0, false
	}

	fd := int(f.Fd())

	return fd, terminal.IsTerminal(fd)
}

// readLine reads a single line from the command's input,
// the line break is not included
func readLine(cmd *cobra.Command) (string, error) {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readPassword asks for a password without echoing it when the input is
// a terminal, otherwise reads one line of piped input
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	if fd, ok := terminalFd(cmd); ok {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)

		buf, err := terminal.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", errors.Wrap(err, "failed to read password")
		}

		if len(buf) == 0 {
			return "", ErrNoPassword
		}

		return string(buf), nil
	}

	p, err := readLine(cmd)
	if err != nil {
		if err == io.EOF {
			return "", ErrNoPassword
		}

		return "", errors.Wrap(err, "failed to read password")
	}

	return p, nil
}

// confirm asks a yes/no question, anything but yes means no
func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)

	answer, err := readLine(cmd)
	if err != nil {
		if err == io.EOF {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to read answer")
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
