package router

import (
	"fmt"

	"pedidos-rapidisimos/internal/assistant"
)

// Route resolves the prediction's top intent and renders its action text.
// Intents outside the table, including Unknown, yield NotUnderstoodMessage.
func (r *Router) Route(p assistant.Prediction) string {
	route, ok := r.routes[assistant.ParseIntent(p.TopIntent)]
	if !ok {
		return NotUnderstoodMessage
	}
	value := SelectEntity(p.Entities, route.Category, route.Fallback)
	return fmt.Sprintf(route.Template, value)
}
