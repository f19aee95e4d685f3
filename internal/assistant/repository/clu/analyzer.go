package clu

import (
	"context"
	"errors"

	"pedidos-rapidisimos/internal/assistant"
	pkgCLU "pedidos-rapidisimos/pkg/clu"
)

// Analyze performs one CLU call and converts the result into the domain Prediction.
func (a *implAnalyzer) Analyze(ctx context.Context, query string) (assistant.Prediction, error) {
	if a.cfgErr != nil {
		return assistant.Prediction{}, assistant.NewError(assistant.KindConfig, a.cfgErr)
	}

	pred, err := a.client.Analyze(ctx, query)
	if err != nil {
		a.l.Warnf(ctx, "%s: %s: %v", LogPrefixAnalyze, a.client.Deployment(), err)
		return assistant.Prediction{}, assistant.NewError(kindOf(err), err)
	}

	out := toPrediction(pred)
	a.l.Debugf(ctx, "%s: topIntent=%s entities=%d", LogPrefixAnalyze, out.TopIntent, len(out.Entities))
	return out, nil
}

func kindOf(err error) assistant.ErrorKind {
	switch {
	case errors.Is(err, pkgCLU.ErrInvalidConfig):
		return assistant.KindConfig
	case errors.Is(err, pkgCLU.ErrMalformedResponse):
		return assistant.KindMalformedResponse
	default:
		return assistant.KindNLUService
	}
}

// toPrediction copies the wire prediction; absent and null entities both become an empty slice.
func toPrediction(p *pkgCLU.Prediction) assistant.Prediction {
	entities := make([]assistant.Entity, 0, len(p.Entities))
	for _, e := range p.Entities {
		entities = append(entities, assistant.Entity{
			Category:        e.Category,
			Text:            e.Text,
			ConfidenceScore: e.ConfidenceScore,
		})
	}
	return assistant.Prediction{
		TopIntent: *p.TopIntent,
		Entities:  entities,
	}
}
