// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package textdiff

import (
	"slices"
	"strings"

	"github.com/di-graph/docdiff/diffmatchpatch"
)

// maxCleanupRounds bounds the search for a fixed point. Real scripts settle
// in two or three rounds.
const maxCleanupRounds = 32

// Cleanup turns a raw edit script into readable segments: trivial equalities
// are folded into the edits around them, edits slide to word and line
// boundaries, and with line granularity every change is widened to whole
// lines. Rounds repeat until the script stops changing, so applying Cleanup
// to its own output returns it unchanged. The input slice is not modified.
func Cleanup(diffs []diffmatchpatch.Diff, opts Options) []diffmatchpatch.Diff {
	dmp := opts.engine()
	linewise := opts.granularity() == GranularityLine

	round := func(d []diffmatchpatch.Diff) []diffmatchpatch.Diff {
		d = compact(dmp.DiffCleanupSemantic(slices.Clone(d)))
		if linewise {
			d = dmp.DiffCleanupLinewise(d)
		}
		return d
	}

	seen := [][]diffmatchpatch.Diff{compact(diffs)}
	for len(seen) <= maxCleanupRounds {
		next := round(seen[len(seen)-1])
		for i, s := range seen {
			if slices.Equal(s, next) {
				return settle(seen[i:])
			}
		}
		seen = append(seen, next)
	}
	return seen[len(seen)-1]
}

// settle picks one script out of a cycle of rounds. The choice depends only
// on the members, so starting from any of them ends at the same script.
func settle(cycle [][]diffmatchpatch.Diff) []diffmatchpatch.Diff {
	best := cycle[0]
	for _, c := range cycle[1:] {
		if compareScripts(c, best) < 0 {
			best = c
		}
	}
	return best
}

// compareScripts orders scripts by segment count, then segment by segment.
func compareScripts(a, b []diffmatchpatch.Diff) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	for i := range a {
		if a[i].Type != b[i].Type {
			return int(a[i].Type) - int(b[i].Type)
		}
		if c := strings.Compare(a[i].Text, b[i].Text); c != 0 {
			return c
		}
	}
	return 0
}

// compact drops empty diffs and joins neighbours of the same type.
func compact(diffs []diffmatchpatch.Diff) []diffmatchpatch.Diff {
	ret := make([]diffmatchpatch.Diff, 0, len(diffs))
	var run []string
	flush := func() {
		if len(run) > 1 {
			ret[len(ret)-1].Text = strings.Join(run, "")
		}
		run = run[:0]
	}

	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		if n := len(ret); n == 0 || ret[n-1].Type != d.Type {
			flush()
			ret = append(ret, d)
		}
		run = append(run, d.Text)
	}
	flush()

	return ret
}
