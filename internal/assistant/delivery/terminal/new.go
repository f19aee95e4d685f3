package terminal

import (
	"io"

	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/pkg/log"
)

// Renderer turns pipeline results into terminal text.
type Renderer interface {
	Reply(out assistant.AskOutput) (string, error)
	Error(err error) string
}

// Shell is the line-oriented terminal front-end. It is strictly sequential.
type Shell struct {
	l        log.Logger
	uc       assistant.UseCase
	in       io.Reader
	out      io.Writer
	renderer Renderer
}

// New creates a Shell reading from in and writing to out.
// A nil renderer falls back to plain text.
func New(l log.Logger, uc assistant.UseCase, in io.Reader, out io.Writer, renderer Renderer) *Shell {
	if renderer == nil {
		renderer = NewPlainRenderer()
	}
	return &Shell{
		l:        l,
		uc:       uc,
		in:       in,
		out:      out,
		renderer: renderer,
	}
}
