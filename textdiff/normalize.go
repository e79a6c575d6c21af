// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package textdiff

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Arguments are tried in order, so CRLF is consumed before a lone CR.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize returns s in Unicode canonical composition (NFC) with every line
// ending unified to "\n". Normalizing an already normalized string is a no-op.
func Normalize(s string) string {
	return lineEndings.Replace(norm.NFC.String(s))
}
