// Package prompt provides terminal prompt adapters.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/puffsec/lockdown/internal/ports"
)

// Terminal prompts the operator on a line-oriented terminal.
//
// Confirm keeps reading until the answer is exactly y, yes, n, or no
// (case-insensitive). There is no default answer and no timeout; an
// ambiguous answer prints a guidance line and asks again.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminal creates a Terminal prompter reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Confirm asks a yes/no question and returns the operator's answer.
func (t *Terminal) Confirm(question string) (bool, error) {
	for {
		if _, err := fmt.Fprintf(t.out, "%s [y/n]: ", question); err != nil {
			return false, err
		}

		line, err := t.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if _, err := fmt.Fprintln(t.out, `Please answer "y" or "n".`); err != nil {
			return false, err
		}
	}
}

// Ask asks a free-form question and returns the first non-empty answer.
func (t *Terminal) Ask(question string) (string, error) {
	for {
		if _, err := fmt.Fprintf(t.out, "%s: ", question); err != nil {
			return "", err
		}

		line, err := t.readLine()
		if err != nil {
			return "", err
		}

		answer := strings.TrimSpace(line)
		if answer != "" {
			return answer, nil
		}
	}
}

func (t *Terminal) readLine() (string, error) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.in.Text(), nil
}

// Ensure Terminal implements ports.Prompter.
var _ ports.Prompter = (*Terminal)(nil)
