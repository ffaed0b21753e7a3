package server

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/Brownie44l1/httpd/internal/config"
	"github.com/Brownie44l1/httpd/internal/files"
	"github.com/Brownie44l1/httpd/internal/router"
)

// ErrServerClosed is returned by Serve after Shutdown
var ErrServerClosed = errors.New("server closed")

// Server accepts connections and serves exactly one request on each.
// Connections share nothing but the read-only configuration, the files
// directory and the metrics counters.
type Server struct {
	cfg        *config.Config
	files      *files.Dir
	router     *router.Router[Handler]
	middleware []Middleware
	logger     Logger
	metrics    *Metrics

	mu       sync.Mutex
	listener net.Listener
	closed   bool
	conns    sync.WaitGroup
}

func New(cfg *config.Config, logger Logger) *Server {
	if logger == nil {
		logger = &NullLogger{}
	}

	return &Server{
		cfg:        cfg,
		files:      files.NewDir(cfg.FilesDirectory),
		router:     newRouter(),
		middleware: []Middleware{RecoveryMiddleware(), LoggingMiddleware()},
		logger:     logger,
		metrics:    NewMetrics(),
	}
}

// Use appends middleware run around every handler
func (s *Server) Use(m ...Middleware) {
	s.middleware = append(s.middleware, m...)
}

// ListenAndServe listens on the configured address and serves until Shutdown
func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener, each handled by its own goroutine.
// It always returns a non-nil error, ErrServerClosed after Shutdown.
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		listener.Close()
		return ErrServerClosed
	}
	s.listener = listener
	s.mu.Unlock()

	s.logger.Info("listening",
		Field{"addr", listener.Addr().String()},
		Field{"directory", s.files.Root()},
	)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.isClosed() {
				return ErrServerClosed
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			s.logger.Warn("accept failed", Field{"error", err})
			continue
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return ErrServerClosed
		}
		s.conns.Add(1)
		s.mu.Unlock()

		go s.serveConn(conn)
	}
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Shutdown stops accepting and waits for in-flight connections until ctx ends
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	listener := s.listener
	s.mu.Unlock()

	var err error
	if listener != nil {
		err = listener.Close()
	}

	done := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("server stopped", s.Stats().Fields()...)
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns a snapshot of the server metrics
func (s *Server) Stats() MetricsSnapshot {
	return s.metrics.Snapshot()
}
