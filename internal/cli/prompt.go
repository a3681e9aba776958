package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errAborted is returned when input ends in the middle of a prompt flow.
var errAborted = errors.New("aborted: no input received")

// prompter reads one trimmed line per question.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(p.out)
		return "", errAborted
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// askUntil repeats question until parse accepts the answer. Errors that
// retry does not match end the loop.
func askUntil[T any](p *prompter, question, hint string, retry error, parse func(string) (T, error)) (T, error) {
	for {
		raw, err := p.ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(raw)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, retry) {
			var zero T
			return zero, err
		}
		fmt.Fprintf(p.out, "Error: %v.\n%s\n", err, hint)
	}
}
