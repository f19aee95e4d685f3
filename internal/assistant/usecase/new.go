package usecase

import (
	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/internal/assistant/repository"
	"pedidos-rapidisimos/internal/router"
	pkgLog "pedidos-rapidisimos/pkg/log"
	"pedidos-rapidisimos/pkg/metrics"
)

type implUseCase struct {
	l        pkgLog.Logger
	analyzer repository.Analyzer
	router   *router.Router
	metrics  *metrics.Metrics
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance. m may be nil.
func New(
	l pkgLog.Logger,
	analyzer repository.Analyzer,
	r *router.Router,
	m *metrics.Metrics,
) *implUseCase {
	if r == nil {
		r = router.New()
	}
	return &implUseCase{
		l:        l,
		analyzer: analyzer,
		router:   r,
		metrics:  m,
	}
}
