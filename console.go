package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

var ErrNoInput = errors.New("no password entered")

// isTerminal reports whether v is an *os.File attached to a terminal
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readPassword asks for the plaintext to crack. Terminals get no echo.
func readPassword(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Please enter a password to crack: ")

	if isTerminal(in) {
		line, err := term.ReadPassword(int(in.(*os.File).Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return strings.TrimRight(string(line), "\r\n"), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func formatRound(r Round) string {
	if r.Found {
		return fmt.Sprintf("Found password: %v in %v by thread %v", r.Password, roundDuration(r.Elapsed), r.Worker)
	}
	return fmt.Sprintf("No password found of length %v in %v", r.Length, roundDuration(r.Elapsed))
}

// roundDuration keeps about three significant digits
func roundDuration(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond)
	case d >= time.Microsecond:
		return d.Round(10 * time.Nanosecond)
	}
	return d
}
