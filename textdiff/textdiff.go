// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package textdiff compares two documents and attributes every differing
// region to the lines it touches on each side.
//
// Compute is a pure function of its inputs. It holds no state between calls
// and may run concurrently from any number of goroutines.
package textdiff

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/di-graph/docdiff/diffmatchpatch"
)

// Operation tells which texts a segment consumes.
type Operation string

const (
	// Equal segments consume text from both sides.
	Equal Operation = "EQUAL"
	// Insert segments consume text from the target only.
	Insert Operation = "INSERT"
	// Delete segments consume text from the source only.
	Delete Operation = "DELETE"
)

func operationOf(op diffmatchpatch.Operation) Operation {
	switch op {
	case diffmatchpatch.DiffInsert:
		return Insert
	case diffmatchpatch.DiffDelete:
		return Delete
	default:
		return Equal
	}
}

func (op Operation) engine() diffmatchpatch.Operation {
	switch op {
	case Insert:
		return diffmatchpatch.DiffInsert
	case Delete:
		return diffmatchpatch.DiffDelete
	default:
		return diffmatchpatch.DiffEqual
	}
}

// Granularity selects how far segments are widened after cleanup.
type Granularity string

const (
	// GranularityLine widens every change to whole lines, so each line of
	// either text belongs to exactly one segment.
	GranularityLine Granularity = "line"
	// GranularityCharacter keeps character-level segments. Neighbouring
	// segments may then share a line.
	GranularityCharacter Granularity = "character"
)

// ParseGranularity accepts "line", "character" or the empty string, which
// selects GranularityLine.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case "", GranularityLine:
		return GranularityLine, nil
	case GranularityCharacter, "char":
		return GranularityCharacter, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// Options configures a single Compute call.
type Options struct {
	// Timeout bounds the minimal edit search. When it expires a coarser but
	// still correct script is returned. Zero means no deadline.
	Timeout time.Duration
	// Granularity defaults to GranularityLine when empty.
	Granularity Granularity
	// SemanticRatio folds an equality into the surrounding edits when it is
	// at most this many times as long as the larger edit on each side.
	// Zero disables folding.
	SemanticRatio float64
}

// DefaultOptions returns a one second timeout, line granularity and a
// semantic ratio of 1.
func DefaultOptions() Options {
	return Options{
		Timeout:       time.Second,
		Granularity:   GranularityLine,
		SemanticRatio: 1,
	}
}

func (o Options) engine() *diffmatchpatch.DiffMatchPatch {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = o.Timeout
	dmp.SemanticRatio = o.SemanticRatio
	return dmp
}

func (o Options) granularity() Granularity {
	if o.Granularity == "" {
		return GranularityLine
	}
	return o.Granularity
}

// LineSpan lists the 1-based lines a segment covers in each text. A side the
// segment does not consume has an empty list.
type LineSpan struct {
	Source []int `json:"source"`
	Target []int `json:"target"`
}

// Segment is one typed piece of the diff.
type Segment struct {
	Op    Operation `json:"operation"`
	Text  string    `json:"text"`
	Lines LineSpan  `json:"lines"`
}

// Result is the ordered list of segments. Segments that are not inserts
// rebuild the source text; segments that are not deletes rebuild the target.
type Result struct {
	Segments []Segment
}

// MarshalJSON encodes the result as a bare list of segments.
func (r Result) MarshalJSON() ([]byte, error) {
	segments := r.Segments
	if segments == nil {
		segments = []Segment{}
	}
	return json.Marshal(segments)
}

// UnmarshalJSON reads a bare list of segments.
func (r *Result) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Segments)
}

// TextA rebuilds the normalized source text.
func (r Result) TextA() string {
	var sb strings.Builder
	for _, s := range r.Segments {
		if s.Op != Insert {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

// TextB rebuilds the normalized target text.
func (r Result) TextB() string {
	var sb strings.Builder
	for _, s := range r.Segments {
		if s.Op != Delete {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

func (r Result) diffs() []diffmatchpatch.Diff {
	diffs := make([]diffmatchpatch.Diff, 0, len(r.Segments))
	for _, s := range r.Segments {
		diffs = append(diffs, diffmatchpatch.Diff{Type: s.Op.engine(), Text: s.Text})
	}
	return diffs
}

// Compute normalizes both texts, computes their edit script, cleans it up and
// attributes every segment to the lines it covers.
func Compute(textA, textB string, opts Options) Result {
	textA = Normalize(textA)
	textB = Normalize(textB)

	indexA := NewLineIndex(textA)
	indexB := NewLineIndex(textB)

	diffs := opts.engine().DiffMain(textA, textB, true)
	diffs = Cleanup(diffs, opts)

	return Result{Segments: attribute(diffs, indexA, indexB)}
}

// attribute walks the script with one rune cursor per text. Equalities move
// both cursors, deletions only the source one, insertions only the target one.
func attribute(diffs []diffmatchpatch.Diff, indexA, indexB *LineIndex) []Segment {
	segments := make([]Segment, 0, len(diffs))
	var posA, posB int

	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		seg := Segment{
			Op:   operationOf(d.Type),
			Text: d.Text,
			Lines: LineSpan{
				Source: []int{},
				Target: []int{},
			},
		}
		if d.Type != diffmatchpatch.DiffInsert {
			seg.Lines.Source = indexA.Lines(posA, posA+n)
			posA += n
		}
		if d.Type != diffmatchpatch.DiffDelete {
			seg.Lines.Target = indexB.Lines(posB, posB+n)
			posB += n
		}
		segments = append(segments, seg)
	}

	return segments
}
