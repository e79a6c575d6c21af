// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package textdiff

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/di-graph/docdiff/diffmatchpatch"
)

// ChangeKind classifies a change block.
type ChangeKind string

const (
	Inserted ChangeKind = "INSERTED"
	Deleted  ChangeKind = "DELETED"
	Replaced ChangeKind = "REPLACED"
)

// Change is a maximal run of non-equal segments, the unit a reviewer reads
// and comments on.
type Change struct {
	// ID is "change-N" with N counting from zero in document order.
	ID         string     `json:"id"`
	Kind       ChangeKind `json:"type"`
	OldContent string     `json:"oldContent"`
	NewContent string     `json:"newContent"`
	// CharDiff is the rune count of NewContent minus that of OldContent.
	CharDiff int      `json:"charDiff"`
	Lines    LineSpan `json:"lines"`
}

// Changes groups the result into change blocks.
func (r Result) Changes() []Change {
	changes := []Change{}

	var (
		open          bool
		before, after strings.Builder
		lines         LineSpan
	)
	flush := func() {
		if !open {
			return
		}
		c := Change{
			ID:         fmt.Sprintf("change-%d", len(changes)),
			OldContent: before.String(),
			NewContent: after.String(),
			Lines:      lines,
		}
		switch {
		case c.OldContent == "":
			c.Kind = Inserted
		case c.NewContent == "":
			c.Kind = Deleted
		default:
			c.Kind = Replaced
		}
		c.CharDiff = utf8.RuneCountInString(c.NewContent) - utf8.RuneCountInString(c.OldContent)
		changes = append(changes, c)

		open = false
		before.Reset()
		after.Reset()
		lines = LineSpan{}
	}

	for _, s := range r.Segments {
		switch s.Op {
		case Equal:
			flush()
			continue
		case Delete:
			before.WriteString(s.Text)
		case Insert:
			after.WriteString(s.Text)
		}
		if !open {
			open = true
			lines = LineSpan{Source: []int{}, Target: []int{}}
		}
		lines.Source = appendLines(lines.Source, s.Lines.Source)
		lines.Target = appendLines(lines.Target, s.Lines.Target)
	}
	flush()

	return changes
}

// appendLines appends a sorted run of lines, skipping the ones dst already
// ends with.
func appendLines(dst, src []int) []int {
	for _, l := range src {
		if n := len(dst); n > 0 && dst[n-1] >= l {
			continue
		}
		dst = append(dst, l)
	}
	return dst
}

// Stats summarizes a result.
type Stats struct {
	// Inserted and Deleted count runes in insert and delete segments.
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
	// Unchanged counts runes shared by both texts.
	Unchanged int `json:"unchanged"`
	// Distance is the Levenshtein distance implied by the segments.
	Distance int `json:"distance"`
	Changes  int `json:"changes"`
}

// Stats computes rune counts, the edit distance and the number of change
// blocks.
func (r Result) Stats() Stats {
	var st Stats
	for _, s := range r.Segments {
		n := utf8.RuneCountInString(s.Text)
		switch s.Op {
		case Insert:
			st.Inserted += n
		case Delete:
			st.Deleted += n
		default:
			st.Unchanged += n
		}
	}
	st.Distance = diffmatchpatch.New().DiffLevenshtein(r.diffs())
	st.Changes = len(r.Changes())
	return st
}
