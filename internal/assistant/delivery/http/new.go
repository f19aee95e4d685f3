package http

import (
	"embed"
	"html/template"

	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/pkg/log"
)

//go:embed templates/index.html
var templatesFS embed.FS

type handler struct {
	l    log.Logger
	uc   assistant.UseCase
	page *template.Template
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:    l,
		uc:   uc,
		page: template.Must(template.ParseFS(templatesFS, "templates/index.html")),
	}
}
