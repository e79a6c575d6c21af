// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const documentPart = "word/document.xml"

// wordText reads the main document part of a .docx container. Paragraphs
// become lines; tabs and explicit breaks are kept.
func wordText(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: opening word document: %w", ErrMalformedDocument, err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("%w: %s not found", ErrMalformedDocument, documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %w", ErrMalformedDocument, documentPart, err)
	}
	defer rc.Close()

	return paragraphs(ctx, rc)
}

func paragraphs(ctx context.Context, r io.Reader) (string, error) {
	var (
		sb     strings.Builder
		inText bool
		seen   bool
	)

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: parsing %s: %w", ErrMalformedDocument, documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if err := ctx.Err(); err != nil {
					return "", err
				}
				if seen {
					sb.WriteByte('\n')
				}
				seen = true
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
