// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText returns the plain text of every page in order.
func pdfText(r io.ReaderAt, size int64) (text string, err error) {
	// The reader panics on some damaged files.
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("%w: reading pdf: %v", ErrMalformedDocument, p)
		}
	}()

	pr, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: opening pdf: %w", ErrMalformedDocument, err)
	}

	content, err := pr.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: reading pdf: %w", ErrMalformedDocument, err)
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return pageText(data), nil
}

// pageText converts extracted page bytes to a string. Fonts without a usable
// encoding map to stray bytes, which become U+FFFD.
func pageText(data []byte) string {
	return strings.ToValidUTF8(string(data), "\uFFFD")
}
