package clu

import "context"

// IClient defines the interface for the Conversation Analysis API client.
// Implementations are safe for concurrent use.
type IClient interface {
	// Analyze sends one single-turn query and returns the service prediction.
	Analyze(ctx context.Context, text string) (*Prediction, error)

	// Deployment returns "project/deployment".
	Deployment() string
}

// New creates a new CLU client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newCLUImpl(cfg), nil
}
