// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package config defines the configuration types and defaults for docdiff.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/di-graph/docdiff/commentary"
	"github.com/di-graph/docdiff/textdiff"
)

// Config is the top-level configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" toml:"server"`
	Diff       DiffConfig       `yaml:"diff" toml:"diff"`
	Commentary CommentaryConfig `yaml:"commentary" toml:"commentary"`
	Log        LogConfig        `yaml:"log" toml:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
	// MaxUploadBytes bounds the whole multipart body of a diff request.
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" toml:"max_upload_bytes"`
	ReadTimeout     time.Duration `yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" toml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins" toml:"allowed_origins"`
}

// DiffConfig holds the defaults of every diff computation.
type DiffConfig struct {
	Timeout       time.Duration `yaml:"timeout" toml:"timeout"`
	Granularity   string        `yaml:"granularity" toml:"granularity"`
	SemanticRatio float64       `yaml:"semantic_ratio" toml:"semantic_ratio"`
	// MaxTimeout caps the timeout a request may ask for.
	MaxTimeout time.Duration `yaml:"max_timeout" toml:"max_timeout"`
}

// CommentaryConfig holds the language model settings.
type CommentaryConfig struct {
	APIKey      string        `yaml:"api_key" toml:"api_key"`
	BaseURL     string        `yaml:"base_url" toml:"base_url"`
	Model       string        `yaml:"model" toml:"model"`
	Temperature float64       `yaml:"temperature" toml:"temperature"`
	MaxTokens   int64         `yaml:"max_tokens" toml:"max_tokens"`
	Language    string        `yaml:"language" toml:"language"`
	Timeout     time.Duration `yaml:"timeout" toml:"timeout"`
	// RatePerMinute limits analyze requests across all clients. Zero disables
	// the limit.
	RatePerMinute float64 `yaml:"rate_per_minute" toml:"rate_per_minute"`
	Burst         int     `yaml:"burst" toml:"burst"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() *Config {
	opts := textdiff.DefaultOptions()
	ai := commentary.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			MaxUploadBytes:  32 << 20,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    2 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Diff: DiffConfig{
			Timeout:       opts.Timeout,
			Granularity:   string(opts.Granularity),
			SemanticRatio: opts.SemanticRatio,
			MaxTimeout:    30 * time.Second,
		},
		Commentary: CommentaryConfig{
			Model:         ai.Model,
			Temperature:   ai.Temperature,
			MaxTokens:     ai.MaxTokens,
			Language:      ai.Language,
			Timeout:       ai.Timeout,
			RatePerMinute: 30,
			Burst:         5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must be set"))
	}
	if c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}

	if c.Diff.Timeout < 0 {
		errs = append(errs, fmt.Errorf("diff.timeout must not be negative, got %s", c.Diff.Timeout))
	}
	if c.Diff.MaxTimeout < 0 {
		errs = append(errs, fmt.Errorf("diff.max_timeout must not be negative, got %s", c.Diff.MaxTimeout))
	}
	if _, err := textdiff.ParseGranularity(c.Diff.Granularity); err != nil {
		errs = append(errs, fmt.Errorf("diff.granularity: %w", err))
	}
	if c.Diff.SemanticRatio < 0 {
		errs = append(errs, fmt.Errorf("diff.semantic_ratio must not be negative, got %g", c.Diff.SemanticRatio))
	}

	if c.Commentary.Temperature < 0 || c.Commentary.Temperature > 2 {
		errs = append(errs, fmt.Errorf("commentary.temperature must be within [0, 2], got %g", c.Commentary.Temperature))
	}
	if c.Commentary.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("commentary.max_tokens must be positive, got %d", c.Commentary.MaxTokens))
	}
	if c.Commentary.RatePerMinute < 0 || c.Commentary.Burst < 0 {
		errs = append(errs, errors.New("commentary.rate_per_minute and commentary.burst must not be negative"))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Options converts the diff section into options for textdiff.Compute.
func (d DiffConfig) Options() (textdiff.Options, error) {
	g, err := textdiff.ParseGranularity(d.Granularity)
	if err != nil {
		return textdiff.Options{}, err
	}
	return textdiff.Options{
		Timeout:       d.Timeout,
		Granularity:   g,
		SemanticRatio: d.SemanticRatio,
	}, nil
}

// ClampTimeout bounds a requested timeout by MaxTimeout. Zero asks for no
// deadline, as it does for Options, and so gets MaxTimeout when one is set.
func (d DiffConfig) ClampTimeout(requested time.Duration) time.Duration {
	if requested <= 0 {
		return d.MaxTimeout
	}
	if d.MaxTimeout > 0 && requested > d.MaxTimeout {
		return d.MaxTimeout
	}
	return requested
}

// Generator converts the commentary section into generator settings.
func (c CommentaryConfig) Generator() commentary.Config {
	return commentary.Config{
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Language:    c.Language,
		Timeout:     c.Timeout,
	}
}

// SlogLevel parses Level. An empty level is info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// Handler builds the slog handler writing to w.
func (l LogConfig) Handler(w io.Writer, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
