package repository

import (
	"context"

	"pedidos-rapidisimos/internal/assistant"
)

//go:generate mockery --name Analyzer
type Analyzer interface {
	// Analyze sends query to the NLU service and returns its prediction.
	// Callers filter empty and quit queries before calling.
	Analyze(ctx context.Context, query string) (assistant.Prediction, error)
}
