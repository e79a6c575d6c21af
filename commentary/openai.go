// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package commentary

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAI generates comments with the chat completions API.
type OpenAI struct {
	client openai.Client
	cfg    Config
}

// NewOpenAI returns a generator for cfg. Extra request options are applied
// after the ones derived from cfg.
func NewOpenAI(cfg Config, extra ...option.RequestOption) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	def := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = def.MaxTokens
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	opts = append(opts, extra...)

	return &OpenAI{
		client: openai.NewClient(opts...),
		cfg:    cfg,
	}, nil
}

// Comment sends the block and returns the trimmed answer.
func (o *OpenAI) Comment(ctx context.Context, b Block) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}

	request := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt()),
			openai.UserMessage(UserPrompt(b, o.cfg.Language)),
		},
		Temperature: openai.Float(o.cfg.Temperature),
		MaxTokens:   openai.Int(o.cfg.MaxTokens),
	}

	resp, err := o.client.Chat.Completions.New(ctx, request)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		text = strings.TrimSpace(resp.Choices[0].Message.Refusal)
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
