// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package commentary

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// HTML renders a comment, which models usually write in Markdown. Raw HTML
// in the comment is omitted from the output.
func HTML(comment string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(comment), &buf); err != nil {
		return "", fmt.Errorf("rendering comment: %w", err)
	}
	return buf.String(), nil
}
