package usecase

import (
	"context"
	"time"

	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/internal/formatter"
)

// Ask runs one pass of the pipeline: analyze, route, format.
// Empty and quit inputs are skipped without touching the analyzer.
func (uc *implUseCase) Ask(ctx context.Context, input assistant.AskInput) (assistant.AskOutput, error) {
	if !assistant.ShouldProcess(input.Query) {
		uc.metrics.ObserveSkipped()
		uc.l.Debugf(ctx, "%s: skipped input %q", LogPrefixAsk, input.Query)
		return assistant.AskOutput{Skipped: true}, nil
	}

	start := time.Now()
	prediction, err := uc.analyzer.Analyze(ctx, input.Query)
	if err != nil {
		kind := assistant.KindOf(err)
		uc.metrics.ObserveFailure(string(kind))
		uc.l.Errorf(ctx, "%s: analyze failed kind=%s: %v", LogPrefixAsk, kind, err)
		return assistant.AskOutput{}, err
	}

	intent := assistant.ParseIntent(prediction.TopIntent)
	action := uc.router.Route(prediction)
	reply := formatter.Format(prediction, action)

	uc.metrics.ObserveIntent(string(intent), time.Since(start))
	uc.l.Infof(ctx, "%s: top_intent=%s intent=%s entities=%d", LogPrefixAsk, prediction.TopIntent, intent, len(prediction.Entities))

	return assistant.AskOutput{
		Prediction: prediction,
		Intent:     intent,
		Action:     action,
		Reply:      reply,
	}, nil
}
