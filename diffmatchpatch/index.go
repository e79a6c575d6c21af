// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import "unicode/utf8"

// Line mode encodes every distinct line as a single rune. Surrogate halves are
// not valid runes and would be replaced by U+FFFD on conversion to string, so
// indexes step over that block.
const (
	runeSkipStart = 0xd800
	runeSkipEnd   = 0xe000
	runeMax       = utf8.MaxRune + 1

	// maxLineIndex is the number of distinct lines the encoding can represent.
	maxLineIndex = runeMax - (runeSkipEnd - runeSkipStart)
)

// lineIndexLimit caps line mode; above it diffLineMode bisects characters instead.
var lineIndexLimit int = maxLineIndex

type index int

func indexToRune(i index) rune {
	if i >= runeSkipStart {
		i += runeSkipEnd - runeSkipStart
	}
	return rune(i)
}

func runeToIndex(r rune) index {
	i := index(r)
	if i >= runeSkipEnd {
		i -= runeSkipEnd - runeSkipStart
	}
	return i
}

func indexesToString(indexes []index) string {
	runes := make([]rune, len(indexes))
	for i, idx := range indexes {
		runes[i] = indexToRune(idx)
	}
	return string(runes)
}

func stringToIndex(text string) []index {
	indexes := make([]index, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		indexes = append(indexes, runeToIndex(r))
	}
	return indexes
}
