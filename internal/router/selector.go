package router

import "pedidos-rapidisimos/internal/assistant"

// SelectEntity returns the text of the first entity whose category equals category,
// or fallback when there is none. Confidence is not considered.
func SelectEntity(entities []assistant.Entity, category, fallback string) string {
	for _, e := range entities {
		if e.Category == category {
			return e.Text
		}
	}
	return fallback
}
