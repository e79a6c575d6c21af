// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package textdiff

import "sort"

// LineIndex maps rune offsets of a normalized text to 1-based line numbers.
// It stores the offset at which every line starts and answers lookups by
// binary search.
type LineIndex struct {
	starts []int
	size   int
}

// NewLineIndex builds the index of text in one pass. The rune right after a
// '\n' starts the next line.
func NewLineIndex(text string) *LineIndex {
	idx := &LineIndex{starts: []int{0}}
	offset := 0
	for _, r := range text {
		offset++
		if r == '\n' {
			idx.starts = append(idx.starts, offset)
		}
	}
	idx.size = offset
	return idx
}

// Size is the length of the indexed text in runes.
func (idx *LineIndex) Size() int {
	return idx.size
}

// LineAt returns the line holding the rune at offset. Offset 0 is line 1.
func (idx *LineIndex) LineAt(offset int) int {
	return sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	})
}

// Lines returns every line touched by the half-open rune range [start, end),
// in ascending order. An empty range touches no line and yields an empty,
// non-nil slice.
func (idx *LineIndex) Lines(start, end int) []int {
	if end <= start {
		return []int{}
	}
	first, last := idx.LineAt(start), idx.LineAt(end-1)
	lines := make([]int, 0, last-first+1)
	for l := first; l <= last; l++ {
		lines = append(lines, l)
	}
	return lines
}

// LineCount is the line of the last rune, or 0 for an empty text. A final
// "\n" ends the last line rather than opening a new one.
func (idx *LineIndex) LineCount() int {
	if idx.size == 0 {
		return 0
	}
	return idx.LineAt(idx.size - 1)
}
