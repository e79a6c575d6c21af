// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package server exposes diffing and block commentary over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/di-graph/docdiff/commentary"
	"github.com/di-graph/docdiff/internal/config"
)

// Server serves the docdiff API.
type Server struct {
	cfg       config.ServerConfig
	diff      atomic.Pointer[config.DiffConfig]
	generator commentary.Generator
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// New returns a server for cfg. A nil generator disables commentary; the
// analyze endpoint then answers 503 while diffing keeps working.
func New(cfg *config.Config, generator commentary.Generator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		cfg:       cfg.Server,
		generator: generator,
		logger:    logger,
	}
	s.diff.Store(&cfg.Diff)

	if perMinute := cfg.Commentary.RatePerMinute; perMinute > 0 {
		burst := max(cfg.Commentary.Burst, 1)
		s.limiter = rate.NewLimiter(rate.Limit(perMinute/60), burst)
	}

	return s
}

// Reload swaps in the diff settings of cfg. Requests already running keep
// the settings they started with.
func (s *Server) Reload(cfg *config.Config) {
	d := cfg.Diff
	s.diff.Store(&d)
}

// Handler returns the routed API with its middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/diff", s.handleDiff)
	mux.HandleFunc("POST /api/analyze-block", s.handleAnalyzeBlock)

	return s.withRequestID(s.withLogging(s.withRecover(s.withCORS(mux))))
}

// ListenAndServe listens on the configured address until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.cfg.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
