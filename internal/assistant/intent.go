package assistant

import "strings"

// QuitCommand is the sentinel input that never reaches the pipeline.
const QuitCommand = "quit"

var knownIntents = map[Intent]struct{}{
	IntentOrdenarComida:   {},
	IntentEstadoPedido:    {},
	IntentCancelarPedido:  {},
	IntentVerMenu:         {},
	IntentHorarioAtencion: {},
}

// ParseIntent maps a provider label onto the closed Intent set.
func ParseIntent(label string) Intent {
	if _, ok := knownIntents[Intent(label)]; ok {
		return Intent(label)
	}
	return IntentUnknown
}

// IsQuit reports whether query is the quit sentinel, ignoring case.
func IsQuit(query string) bool {
	return strings.EqualFold(query, QuitCommand)
}

// ShouldProcess reports whether query may be sent through the pipeline.
func ShouldProcess(query string) bool {
	return query != "" && !IsQuit(query)
}
