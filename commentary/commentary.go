// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package commentary asks a language model to review a single change block
// the way a contract lawyer would.
package commentary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNoAPIKey is returned when no API key is configured.
	ErrNoAPIKey = errors.New("no API key configured")
	// ErrEmptyResponse is returned when the model answers without text.
	ErrEmptyResponse = errors.New("model returned no comment")
	// ErrIncompleteBlock is returned for blocks without an ID or without text.
	ErrIncompleteBlock = errors.New("block needs an ID and original or modified text")
)

// Block is one change with the text around it on both sides.
type Block struct {
	ID       string
	Original string
	Modified string
}

// Validate reports whether the block can be sent for review.
func (b Block) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return ErrIncompleteBlock
	}
	if strings.TrimSpace(b.Original) == "" && strings.TrimSpace(b.Modified) == "" {
		return ErrIncompleteBlock
	}
	return nil
}

// Generator writes a review comment for a block.
type Generator interface {
	Comment(ctx context.Context, b Block) (string, error)
}

// Func adapts a function to a Generator.
type Func func(ctx context.Context, b Block) (string, error)

func (f Func) Comment(ctx context.Context, b Block) (string, error) {
	return f(ctx, b)
}

// Config holds the model settings.
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint, for proxies and compatible servers.
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int64
	// Language is the language the comment is written in.
	Language string
	// Timeout bounds a single request. Zero leaves it to the caller's context.
	Timeout time.Duration
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4o",
		Temperature: 0.2,
		MaxTokens:   500,
		Language:    "Traditional Chinese as used in Taiwan",
		Timeout:     60 * time.Second,
	}
}

const systemPrompt = "You are a senior contract lawyer. When given two versions of a contract " +
	"paragraph, before and after a change, you point out legal risks and missing clauses " +
	"and suggest improvements."

// SystemPrompt returns the instructions sent ahead of every block.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt renders the block for the model.
func UserPrompt(b Block, language string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Diff block ID: %s\n", b.ID)
	sb.WriteString("── Original passage ──\n")
	sb.WriteString(b.Original)
	sb.WriteString("\n── Modified passage ──\n")
	sb.WriteString(b.Modified)
	sb.WriteString("\nReview the change to the passage as a whole and give your professional legal advice")
	if language != "" {
		fmt.Fprintf(&sb, ". Answer in %s", language)
	}
	sb.WriteString(".\n")
	return sb.String()
}
