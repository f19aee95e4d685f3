package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Run listens on the configured port and serves until ctx is cancelled.
func (srv HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", srv.port))
	if err != nil {
		return fmt.Errorf("httpserver.Listen: %w", err)
	}
	return srv.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
// ln is closed when Serve returns.
func (srv HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	httpSrv := &http.Server{
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", ln.Addr())
		serverErrors <- httpSrv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("httpserver.Serve: %w", err)

	case <-ctx.Done():
		srv.l.Info(context.Background(), "Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			srv.l.Errorf(shutdownCtx, "Graceful shutdown did not complete in %v: %v", shutdownTimeout, err)
			if cerr := httpSrv.Close(); cerr != nil {
				return fmt.Errorf("httpserver.Close: %w", cerr)
			}
		}
		return nil
	}
}
