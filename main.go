// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package main is the entry point for docdiff.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/di-graph/docdiff/commentary"
	"github.com/di-graph/docdiff/extract"
	"github.com/di-graph/docdiff/internal/config"
	"github.com/di-graph/docdiff/internal/server"
	"github.com/di-graph/docdiff/textdiff"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "diff":
		return runDiff(ctx, args[1:], stdout, stderr)
	case "serve":
		return runServe(ctx, args[1:], stderr)
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "docdiff %s (%s)\n", version, commit)
		return 0
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	}

	fmt.Fprintf(stderr, "docdiff: unknown command %q\n", args[0])
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  docdiff diff [flags] <original> <modified>
  docdiff serve [flags]
  docdiff version

Run "docdiff <command> -h" for the flags of a command.
`)
}

type diffOutput struct {
	Diffs   textdiff.Result   `json:"diffs"`
	Changes []textdiff.Change `json:"changes,omitempty"`
	Stats   *textdiff.Stats   `json:"stats,omitempty"`
}

func runDiff(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file")
	timeout := fs.Duration("timeout", -1, "bound on the minimal edit search, 0 for none (default from config)")
	granularity := fs.String("granularity", "", "line or character (default from config)")
	changes := fs.Bool("changes", false, "include change blocks")
	stats := fs.Bool("stats", false, "include statistics")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: docdiff diff [flags] <original> <modified>\n\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "docdiff: %v\n", err)
		return 1
	}
	if *granularity != "" {
		cfg.Diff.Granularity = *granularity
	}
	opts, err := cfg.Diff.Options()
	if err != nil {
		fmt.Fprintf(stderr, "docdiff: %v\n", err)
		return 2
	}
	if *timeout >= 0 {
		opts.Timeout = *timeout
	}

	textA, err := readDocument(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "docdiff: %v\n", err)
		return 1
	}
	textB, err := readDocument(ctx, fs.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "docdiff: %v\n", err)
		return 1
	}

	result := textdiff.Compute(textA, textB, opts)
	out := diffOutput{Diffs: result}
	if *changes {
		out.Changes = result.Changes()
	}
	if *stats {
		st := result.Stats()
		out.Stats = &st
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(stderr, "docdiff: %v\n", err)
		return 1
	}
	return 0
}

func readDocument(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	text, err := extract.Text(ctx, path, f, info.Size())
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

func runServe(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file")
	addr := fs.String("addr", "", "listen address (default from config)")
	watch := fs.Bool("watch", false, "reload diff settings when the config file changes")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	path := *configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.Discover(wd)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "docdiff: %v\n", err)
		return 1
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(cfg.Log.Handler(stderr, level))

	var generator commentary.Generator
	if g, err := commentary.NewOpenAI(cfg.Commentary.Generator()); err == nil {
		generator = g
	} else {
		logger.Warn("commentary disabled", "err", err)
	}

	srv := server.New(cfg, generator, logger)

	if *watch && path != "" {
		go func() {
			if err := config.Watch(ctx, path, logger, srv.Reload); err != nil {
				logger.Error("config watch stopped", "err", err)
			}
		}()
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server stopped", "err", err)
		return 1
	}
	return 0
}
