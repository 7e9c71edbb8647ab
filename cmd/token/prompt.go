package token

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github/chapool/humtoken/internal/token"
)

// promptSigningKey reads the key from the terminal without echo. When stdin
// is not a terminal the first line is read instead.
//
//nolint:forbidigo // key input requires direct terminal I/O
func promptSigningKey(prompt string) (token.SigningKey, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // fd fits int

	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", errors.Wrap(err, "failed to read private key from stdin")
		}
		return token.SigningKey(strings.TrimSpace(line)), nil
	}

	fmt.Fprint(os.Stderr, prompt)

	keyBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "failed to read private key from terminal")
	}

	return token.SigningKey(strings.TrimSpace(string(keyBytes))), nil
}

// startSpinner shows msg with a spinner on stderr and returns the stop
// function. Without a terminal only the message is printed.
func startSpinner(msg string) func() {
	if !term.IsTerminal(int(os.Stderr.Fd())) { //nolint:gosec // fd fits int
		fmt.Fprintln(os.Stderr, msg)
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + msg
	s.Start()

	return func() {
		s.Stop()
		fmt.Fprintln(os.Stderr)
	}
}
