package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"pedidos-rapidisimos/internal/assistant"
)

// Format renders a prediction and its action text into the three reply lines.
func Format(p assistant.Prediction, action string) assistant.Reply {
	return assistant.Reply{
		IntentLine:    intentLinePrefix + p.TopIntent,
		EntitiesBlock: entitiesBlock(p.Entities),
		ActionLine:    action,
	}
}

func entitiesBlock(entities []assistant.Entity) string {
	if len(entities) == 0 {
		return noEntitiesBlock
	}

	lines := make([]string, 0, len(entities)+1)
	lines = append(lines, entitiesHeader)
	for _, e := range entities {
		lines = append(lines, fmt.Sprintf(entityLineFormat, e.Category, e.Text, FormatScore(e.ConfidenceScore)))
	}
	return strings.Join(lines, "\n")
}

// FormatScore prints a confidence score in its shortest round-trip form.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// Markdown renders a reply for terminal display. Entities come from the
// prediction so each field can be emphasised on its own.
func Markdown(p assistant.Prediction, reply assistant.Reply) string {
	var b strings.Builder
	fmt.Fprintf(&b, markdownIntent, escape(p.TopIntent))
	b.WriteString("\n\n")

	if len(p.Entities) == 0 {
		b.WriteString(markdownNone)
	} else {
		b.WriteString(markdownEntities)
		b.WriteString("\n\n")
		for i, e := range p.Entities {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, markdownEntityFmt, escape(e.Category), escape(e.Text), FormatScore(e.ConfidenceScore))
		}
	}

	b.WriteString("\n\n")
	fmt.Fprintf(&b, markdownAction, escape(reply.ActionLine))
	b.WriteString("\n")
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
