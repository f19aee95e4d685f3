package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "pedidos-rapidisimos/internal/assistant/delivery/http"
)

// setupAssistantDomain registers the query page and the JSON query API.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)

	// Routes: GET|POST / and POST /api/v1/queries
	assistantHTTP.RegisterRoutes(srv.gin, api, h, srv.mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
