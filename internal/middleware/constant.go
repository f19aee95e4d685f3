package middleware

import "time"

const (
	HeaderRequestID     = "X-Request-ID"
	ContextKeyRequestID = "request_id"

	limiterMaxSources = 1000
	limiterTTL        = 5 * time.Minute
)
