// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/


// Package extract turns uploaded documents into plain text for diffing.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnsupportedFormat is returned for file names whose extension has no
	// extractor.
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrInvalidEncoding is returned for plain text that is not UTF-8.
	ErrInvalidEncoding = errors.New("text is not valid UTF-8")
	// ErrMalformedDocument is returned when a Word or PDF container cannot be read.
	ErrMalformedDocument = errors.New("malformed document")
)

// Kind is the document format of a file, resolved once from its name.
type Kind int

const (
	PlainText Kind = iota
	WordDocument
	PDF
)

func (k Kind) String() string {
	switch k {
	case PlainText:
		return "PlainText"
	case WordDocument:
		return "WordDocument"
	case PDF:
		return "PDF"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromName resolves the format from the file extension. Files without an
// extension are read as plain text.
func KindFromName(name string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case "", ".txt", ".text", ".md":
		return PlainText, nil
	case ".docx":
		return WordDocument, nil
	case ".pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Text extracts the text of the file called name, whose content is read from
// r and is size bytes long.
func Text(ctx context.Context, name string, r io.ReaderAt, size int64) (string, error) {
	kind, err := KindFromName(name)
	if err != nil {
		return "", err
	}
	return kind.Extract(ctx, r, size)
}

// Extract reads the document with the extractor of k.
func (k Kind) Extract(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch k {
	case PlainText:
		return plainText(r, size)
	case WordDocument:
		return wordText(ctx, r, size)
	case PDF:
		return pdfText(r, size)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, k)
}

var byteOrderMark = []byte("\xef\xbb\xbf")

func plainText(r io.ReaderAt, size int64) (string, error) {
	data, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}
	data = bytes.TrimPrefix(data, byteOrderMark)
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
