package command

import (
	"bufio"
	"fmt"
	"io"
)

// Lines is a LineReader over a plain stream, for input that is not a
// terminal. The prompt is written before each read.
type Lines struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewLines reads lines from r and writes prompts to out.
func NewLines(r io.Reader, out io.Writer) *Lines {
	return &Lines{scanner: bufio.NewScanner(r), out: out}
}

// SetPrompt implements LineReader.
func (l *Lines) SetPrompt(prompt string) { l.prompt = prompt }

// ReadLine implements LineReader. It returns io.EOF at end of input.
func (l *Lines) ReadLine() (string, error) {
	if l.prompt != "" {
		fmt.Fprint(l.out, l.prompt)
	}
	if l.scanner.Scan() {
		return l.scanner.Text(), nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
