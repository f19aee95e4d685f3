package http

import (
	"net/http"

	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/pkg/response"
)

var kindTitles = map[assistant.ErrorKind]string{
	assistant.KindConfig:            "Configuration error",
	assistant.KindNLUService:        "Language service error",
	assistant.KindMalformedResponse: "Unexpected language service response",
}

// mapError translates pipeline errors into HTTP errors by kind.
func (h *handler) mapError(err error) *response.HTTPError {
	kind := assistant.KindOf(err)
	status := http.StatusBadGateway
	if kind == assistant.KindConfig {
		status = http.StatusServiceUnavailable
	}
	return response.NewHTTPError(status, kindTitles[kind]+": "+assistant.Detail(err))
}

// newAlert builds the page alert for a pipeline error.
func newAlert(err error) *alertView {
	kind := assistant.KindOf(err)
	return &alertView{
		Kind:    string(kind),
		Title:   kindTitles[kind],
		Message: assistant.Detail(err),
	}
}
