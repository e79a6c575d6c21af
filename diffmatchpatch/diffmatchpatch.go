// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package diffmatchpatch computes character-level edit scripts between two
// texts and tidies them into human-readable segments.
package diffmatchpatch

import (
	"strings"
	"time"
)

// indexOf returns the first index of pattern in str, starting at str[i].
func indexOf(str string, pattern string, i int) int {
	if i > len(str)-1 {
		return -1
	}
	if i <= 0 {
		return strings.Index(str, pattern)
	}
	ind := strings.Index(str[i:], pattern)
	if ind == -1 {
		return -1
	}
	return ind + i
}

func runesEqual(r1, r2 []rune) bool {
	if len(r1) != len(r2) {
		return false
	}
	for i, c := range r1 {
		if c != r2[i] {
			return false
		}
	}
	return true
}

// The equivalent of strings.Index for rune slices.
func runesIndex(r1, r2 []rune) int {
	return newRuneFinder(r2).index(r1, 0)
}

// runeFinder searches rune slices for a fixed pattern in linear time
// (Knuth-Morris-Pratt), so the scans ahead of bisection stay cheap on long
// repetitive texts.
type runeFinder struct {
	pattern []rune
	// border[i] is the length of the longest proper prefix of pattern[:i+1]
	// that is also its suffix.
	border []int
}

func newRuneFinder(pattern []rune) *runeFinder {
	border := make([]int, len(pattern))
	for i, k := 1, 0; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = border[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		border[i] = k
	}
	return &runeFinder{pattern: pattern, border: border}
}

// index returns the first occurrence of the pattern in target at or after
// from, or -1.
func (f *runeFinder) index(target []rune, from int) int {
	from = max(from, 0)
	m := len(f.pattern)
	if m == 0 {
		if from <= len(target) {
			return from
		}
		return -1
	}

	k := 0
	for i := from; i < len(target); i++ {
		for k > 0 && target[i] != f.pattern[k] {
			k = f.border[k-1]
		}
		if target[i] == f.pattern[k] {
			k++
		}
		if k == m {
			return i - m + 1
		}
	}
	return -1
}

// overlap returns the length of the longest suffix of text that is a prefix
// of the pattern.
func (f *runeFinder) overlap(text []rune) int {
	m := len(f.pattern)
	if m == 0 {
		return 0
	}

	k := 0
	for _, c := range text {
		if k == m {
			k = f.border[k-1]
		}
		for k > 0 && c != f.pattern[k] {
			k = f.border[k-1]
		}
		if c == f.pattern[k] {
			k++
		}
	}
	return k
}

// DiffMatchPatch holds the configuration for one diff computation. It carries
// no state between calls, so a single value may be shared by goroutines as
// long as nobody mutates it.
type DiffMatchPatch struct {
	// Time budget for a diff before falling back to a coarser result (0 for infinity).
	DiffTimeout time.Duration
	// Texts longer than this many runes on both sides are diffed line by line
	// first when line checking is requested.
	LineModeThreshold int
	// An equality between edits is folded into them when its length is at most
	// SemanticRatio times the larger edit on each side. 0 disables folding.
	SemanticRatio float64
}

// New creates a new DiffMatchPatch object with default parameters.
func New() *DiffMatchPatch {
	// Defaults.
	return &DiffMatchPatch{
		DiffTimeout:       time.Second,
		LineModeThreshold: 100,
		SemanticRatio:     1.0,
	}
}
