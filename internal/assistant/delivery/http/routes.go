package http

import (
	"pedidos-rapidisimos/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the page routes on r and the JSON API on api.
// Query routes are rate limited per client.
func RegisterRoutes(r gin.IRoutes, api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	r.GET("/", h.Page)
	r.POST("/", mw.RateLimit(), h.Submit)

	queries := api.Group("/queries")
	{
		queries.POST("", mw.RateLimit(), h.Query)
	}
}
