package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pedidos-rapidisimos/pkg/log"
)

// RequestID reuses the incoming X-Request-ID or generates one, echoes it on
// the response and stores it in the request context for logs and NLU calls.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
