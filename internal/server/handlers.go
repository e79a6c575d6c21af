// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/di-graph/docdiff/commentary"
	"github.com/di-graph/docdiff/extract"
	"github.com/di-graph/docdiff/textdiff"
)

// maxBlockBytes bounds the JSON body of an analyze request.
const maxBlockBytes = 1 << 20

type diffResponse struct {
	Diffs        textdiff.Result   `json:"diffs"`
	Changes      []textdiff.Change `json:"changes"`
	Stats        textdiff.Stats    `json:"stats"`
	OriginalText string            `json:"originalText"`
	ModifiedText string            `json:"modifiedText"`
}

type analyzeRequest struct {
	BlockID         json.RawMessage `json:"blockId"`
	OriginalContext string          `json:"originalContext"`
	ModifiedContext string          `json:"modifiedContext"`
}

type analyzeResponse struct {
	BlockID     json.RawMessage `json:"blockId"`
	Comment     string          `json:"comment"`
	CommentHTML string          `json:"commentHtml,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, "upload exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return
		}
		s.writeError(w, r, http.StatusBadRequest, "expected a multipart form with file1 and file2")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			s.logger.Warn("removing upload files", "err", err)
		}
	}()

	opts, err := s.diffOptions(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	file1, header1, err1 := r.FormFile("file1")
	file2, header2, err2 := r.FormFile("file2")
	for _, f := range []multipart.File{file1, file2} {
		if f != nil {
			defer f.Close()
		}
	}
	if err1 != nil || err2 != nil {
		s.writeError(w, r, http.StatusBadRequest, "file1 and file2 are required")
		return
	}

	textA, err := extract.Text(r.Context(), header1.Filename, file1, header1.Size)
	if err != nil {
		s.writeExtractError(w, r, header1.Filename, err)
		return
	}
	textB, err := extract.Text(r.Context(), header2.Filename, file2, header2.Size)
	if err != nil {
		s.writeExtractError(w, r, header2.Filename, err)
		return
	}

	start := time.Now()
	result := textdiff.Compute(textA, textB, opts)
	stats := result.Stats()
	s.logger.Debug("diff computed",
		"request_id", requestID(r.Context()),
		"segments", len(result.Segments),
		"changes", stats.Changes,
		"elapsed", time.Since(start))

	s.writeJSON(w, r, http.StatusOK, diffResponse{
		Diffs:        result,
		Changes:      result.Changes(),
		Stats:        stats,
		OriginalText: result.TextA(),
		ModifiedText: result.TextB(),
	})
}

// diffOptions reads the optional timeout (seconds) and granularity fields
// over the configured defaults. A timeout of 0 requests no deadline and is
// capped at diff.max_timeout.
func (s *Server) diffOptions(r *http.Request) (textdiff.Options, error) {
	d := *s.diff.Load()

	if v := strings.TrimSpace(r.FormValue("granularity")); v != "" {
		d.Granularity = v
	}
	opts, err := d.Options()
	if err != nil {
		return opts, err
	}

	if v := strings.TrimSpace(r.FormValue("timeout")); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil || secs < 0 {
			return opts, errors.New("timeout must be a non-negative number of seconds")
		}
		opts.Timeout = d.ClampTimeout(time.Duration(secs * float64(time.Second)))
	}

	return opts, nil
}

func (s *Server) writeExtractError(w http.ResponseWriter, r *http.Request, name string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, extract.ErrInvalidEncoding), errors.Is(err, extract.ErrMalformedDocument):
		status = http.StatusUnprocessableEntity
	}
	s.writeError(w, r, status, name+": "+err.Error())
}

func (s *Server) handleAnalyzeBlock(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBlockBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	block := commentary.Block{
		ID:       blockID(req.BlockID),
		Original: req.OriginalContext,
		Modified: req.ModifiedContext,
	}
	if err := block.Validate(); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "blockId and originalContext or modifiedContext are required")
		return
	}

	if s.generator == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, "commentary is not configured")
		return
	}
	if s.limiter != nil && !s.limiter.Allow() {
		w.Header().Set("Retry-After", "60")
		s.writeError(w, r, http.StatusTooManyRequests, "too many analyze requests")
		return
	}

	comment, err := s.generator.Comment(r.Context(), block)
	if err != nil {
		s.logger.Error("commentary failed", "request_id", requestID(r.Context()), "block", block.ID, "err", err)
		s.writeError(w, r, http.StatusBadGateway, "commentary failed")
		return
	}

	html, err := commentary.HTML(comment)
	if err != nil {
		s.logger.Warn("rendering comment", "request_id", requestID(r.Context()), "err", err)
	}

	s.writeJSON(w, r, http.StatusOK, analyzeResponse{
		BlockID:     req.BlockID,
		Comment:     comment,
		CommentHTML: html,
	})
}

// blockID accepts a JSON string or number. Anything else yields "".
func blockID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("writing response", "request_id", requestID(r.Context()), "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, errorResponse{Error: msg})
}
