package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/handler"
	"github.com/MKhiriev/go-blog/internal/logger"
)

type server struct {
	httpServer Server
	logger     *logger.Logger

	// closers release storages after the listener is down, in order.
	closers []func() error
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...func() error) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
		closers:    closers,
	}, nil
}

func (s *server) RunServer() {
	s.run(context.Background())
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			s.logger.Err(err).Msg("error releasing resources")
		}
	}
}

// run serves until ctx is cancelled or a stop signal arrives, then shuts
// down gracefully.
func (s *server) run(parent context.Context) {
	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
