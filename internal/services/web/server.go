package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/uniplan/uniplan/internal/platform/timeouts"
	"github.com/uniplan/uniplan/internal/storage"
	"github.com/uniplan/uniplan/internal/storage/jsonfile"
)

// Config defines the inputs for the web process.
type Config struct {
	HTTPAddr  string
	DataFile  string
	BackupDir string
}

// Server hosts the planner web front end over a JSON-file store.
type Server struct {
	httpAddr   string
	store      storage.DocumentStore
	httpServer *http.Server
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	store, err := jsonfile.New(config.DataFile, config.BackupDir)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}

	handler := NewHandler(store)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{
		httpAddr:   httpAddr,
		store:      store,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.store.Ensure(ctx); err != nil {
		return fmt.Errorf("ensure data file: %w", err)
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
