package assistant

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Ask runs one query through the intent-resolution pipeline.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
}
