package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
)

// ShutdownTimeout bounds the graceful shutdown after the run context ends.
const ShutdownTimeout = 5 * time.Second

type server struct {
	httpServer *httpServer
	address    string
	logger     *logger.Logger
}

// NewServer creates the daemon server listening on address.
func NewServer(handler http.Handler, address string, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, errNoAddress
	}

	logger.Info().Str("address", address).Msg("creating new server...")
	return &server{
		httpServer: newHTTPServer(handler, address),
		address:    address,
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.address, err)
	}
	return s.serve(ctx, l)
}

func (s *server) serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", l.Addr().String()).Msg("launching HTTP server")
		errCh <- s.httpServer.serve(l)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return <-errCh
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
