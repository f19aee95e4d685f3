package formatter

const (
	intentLinePrefix  = "Detected intent: "
	entitiesHeader    = "Detected entities:"
	noEntitiesBlock   = "Detected entities: none"
	entityLineFormat  = "Category: %s - Text: %s - Confidence: %s"
	markdownIntent    = "**Detected intent:** %s"
	markdownEntities  = "**Detected entities:**"
	markdownNone      = "**Detected entities:** none"
	markdownEntityFmt = "- **%s**: %s (%s)"
	markdownAction    = "> %s"
)
