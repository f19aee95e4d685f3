package terminal

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"pedidos-rapidisimos/internal/assistant"
)

// Run reads one query per line until quit, EOF or ctx is done.
// Pipeline errors are printed and the session continues.
// Lines are read on a separate goroutine so a cancelled ctx ends a session
// waiting for input. That goroutine stays blocked in Read until the input
// yields another line or is closed.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, Banner)

	stop := make(chan struct{})
	defer close(stop)
	lines, readErr := s.readLines(stop)

	for {
		fmt.Fprint(s.out, Prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(s.out)
			return <-readErr
		}

		line = strings.TrimRight(line, "\r")
		if assistant.IsQuit(line) {
			fmt.Fprintln(s.out, GoodbyeLine)
			return nil
		}

		s.Ask(ctx, line)

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// readLines scans s.in until EOF or stop is closed. The scan error is sent on
// the returned error channel before lines is closed.
func (s *Shell) readLines(stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// Ask runs a single query and prints its reply or error.
// It returns the pipeline error, if any, after printing it.
func (s *Shell) Ask(ctx context.Context, query string) error {
	out, err := s.uc.Ask(ctx, assistant.AskInput{Query: query})
	if err != nil {
		s.l.Warnf(ctx, "terminal.Ask: %v", err)
		fmt.Fprintln(s.out, s.renderer.Error(err))
		return err
	}
	if out.Skipped {
		return nil
	}

	text, err := s.renderer.Reply(out)
	if err != nil {
		s.l.Warnf(ctx, "terminal.Ask: render: %v", err)
		text, _ = NewPlainRenderer().Reply(out)
	}
	fmt.Fprint(s.out, text)
	return nil
}
