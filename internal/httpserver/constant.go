package httpserver

import "time"

const (
	EnvironmentProduction = "production"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)
