package clu

import (
	"pedidos-rapidisimos/internal/assistant/repository"
	pkgCLU "pedidos-rapidisimos/pkg/clu"
	pkgLog "pedidos-rapidisimos/pkg/log"
)

type implAnalyzer struct {
	l      pkgLog.Logger
	client pkgCLU.IClient
	cfgErr error
}

var _ repository.Analyzer = (*implAnalyzer)(nil)

// New creates the CLU backed Analyzer. An invalid cfg does not fail construction:
// every Analyze call then returns a config error without touching the network.
func New(l pkgLog.Logger, cfg pkgCLU.Config) *implAnalyzer {
	client, err := pkgCLU.New(cfg)
	return &implAnalyzer{
		l:      l,
		client: client,
		cfgErr: err,
	}
}

// ConfigErr returns the configuration error, if any.
func (a *implAnalyzer) ConfigErr() error {
	return a.cfgErr
}
