package clu

// Log prefixes
const (
	LogPrefixAnalyze = "internal.assistant.repository.clu.Analyze"
)
