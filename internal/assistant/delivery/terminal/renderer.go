package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/internal/formatter"
)

var kindColors = map[assistant.ErrorKind]string{
	assistant.KindConfig:            colorConfig,
	assistant.KindNLUService:        colorService,
	assistant.KindMalformedResponse: colorFormat,
}

var kindLabels = map[assistant.ErrorKind]string{
	assistant.KindConfig:            "Configuration error",
	assistant.KindNLUService:        "Language service error",
	assistant.KindMalformedResponse: "Unexpected language service response",
}

type plainRenderer struct{}

// NewPlainRenderer prints the three reply lines without styling.
func NewPlainRenderer() Renderer {
	return plainRenderer{}
}

func (plainRenderer) Reply(out assistant.AskOutput) (string, error) {
	return strings.Join([]string{out.Reply.IntentLine, out.Reply.EntitiesBlock, out.Reply.ActionLine}, "\n") + "\n", nil
}

func (plainRenderer) Error(err error) string {
	return errorLine(err)
}

type styledRenderer struct {
	md     *glamour.TermRenderer
	output *termenv.Output
}

// NewStyledRenderer renders replies as markdown and colours errors by kind
// using the colour profile of w.
func NewStyledRenderer(w io.Writer) (Renderer, error) {
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("glamour.NewTermRenderer: %w", err)
	}
	return &styledRenderer{md: md, output: termenv.NewOutput(w)}, nil
}

func (r *styledRenderer) Reply(out assistant.AskOutput) (string, error) {
	return r.md.Render(formatter.Markdown(out.Prediction, out.Reply))
}

func (r *styledRenderer) Error(err error) string {
	kind := assistant.KindOf(err)
	return r.output.String(errorLine(err)).
		Foreground(r.output.Color(kindColors[kind])).
		Bold().
		String()
}

func errorLine(err error) string {
	return kindLabels[assistant.KindOf(err)] + ": " + assistant.Detail(err)
}
