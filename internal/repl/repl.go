// Package repl runs the read-eval-print loop shared by the interactive demos.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	// QuitCommand ends the loop, compared case-insensitively.
	QuitCommand = "quit"

	// MsgExiting is printed when the user quits.
	MsgExiting = "Exiting..."
)

// Handler answers one non-blank, trimmed line. The returned text is printed as is.
type Handler func(ctx context.Context, line string) (string, error)

// Loop prompts for lines on in and prints answers to out.
type Loop struct {
	prompt string
	in     io.Reader
	out    io.Writer
}

// New creates a new Loop.
func New(in io.Reader, out io.Writer, prompt string) *Loop {
	return &Loop{prompt: prompt, in: in, out: out}
}

type readResult struct {
	line string
	err  error
	eof  bool
}

// Run loops until the user quits, input ends, ctx is cancelled or the handler fails.
// Handler errors are returned to the caller unchanged.
func (l *Loop) Run(ctx context.Context, h Handler) error {
	lines := make(chan readResult, 1)
	next := make(chan struct{})
	go l.read(lines, next)
	defer close(next)

	for {
		if _, err := fmt.Fprint(l.out, l.prompt); err != nil {
			return err
		}

		var r readResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(l.out)
			return nil
		case r = <-lines:
		}
		if r.err != nil {
			return fmt.Errorf("failed to read input: %w", r.err)
		}
		if r.eof {
			fmt.Fprintln(l.out)
			return nil
		}

		line := strings.TrimSpace(r.line)
		switch {
		case strings.EqualFold(line, QuitCommand):
			fmt.Fprintln(l.out, MsgExiting)
			return nil
		case line == "":
		default:
			answer, err := h(ctx, line)
			if err != nil {
				return err
			}
			if answer != "" {
				fmt.Fprintln(l.out, answer)
			}
		}

		select {
		case next <- struct{}{}:
		case <-ctx.Done():
			fmt.Fprintln(l.out)
			return nil
		}
	}
}

// read scans one line per request so input is never consumed ahead of the prompt.
func (l *Loop) read(lines chan<- readResult, next <-chan struct{}) {
	sc := bufio.NewScanner(l.in)
	for {
		var r readResult
		if sc.Scan() {
			r.line = sc.Text()
		} else if r.err = sc.Err(); r.err == nil {
			r.eof = true
		}
		lines <- r
		if r.eof || r.err != nil {
			return
		}
		if _, ok := <-next; !ok {
			return
		}
	}
}
