// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"strings"
)

// DiffCleanupLinewise widens every edit to whole lines, so that each line of
// either text is covered by exactly one diff. Inside a run of edits the
// deletions come before the insertions, and neighbouring diffs of the same
// type are joined. Unlike DiffCleanupMerge no common prefix or suffix is
// factored out, since that would split lines again.
func (dmp *DiffMatchPatch) DiffCleanupLinewise(diffs []Diff) []Diff {
	return joinAdjacent(reorderDeletionsFirst(diffLinewise(diffs)))
}

// diffLinewise splits and merges diffs so that each individual diff represents one line, including the final newline character.
func diffLinewise(diffs []Diff) []Diff {
	var (
		ret          []Diff
		line1, line2 string
	)

	diffs = diffCleanupNewline(diffs)

	add := func(d Diff) {
		switch d.Type {
		case DiffDelete:
			line1 += d.Text
		case DiffInsert:
			line2 += d.Text
		default:
			line1 += d.Text
			line2 += d.Text
		}

		// Both buffers start at a line start, so a complete line that reads
		// the same on both sides is unchanged.
		if strings.HasSuffix(line1, "\n") && line1 == line2 {
			ret = append(ret, Diff{DiffEqual, line1})
			line1, line2 = "", ""
		}
		if strings.HasSuffix(line1, "\n") {
			ret = append(ret, Diff{DiffDelete, line1})
			line1 = ""
		}
		if strings.HasSuffix(line2, "\n") {
			ret = append(ret, Diff{DiffInsert, line2})
			line2 = ""
		}
	}

	for _, diff := range diffs {
		if diff.Text == "" {
			continue
		}
		for _, segment := range strings.SplitAfter(diff.Text, "\n") {
			if segment != "" {
				add(Diff{diff.Type, segment})
			}
		}
	}

	// Whatever is left is the last line of a text without a final newline.
	if line1 != "" && line1 == line2 {
		ret = append(ret, Diff{DiffEqual, line1})
		line1, line2 = "", ""
	}
	if line1 != "" {
		ret = append(ret, Diff{DiffDelete, line1})
	}
	if line2 != "" {
		ret = append(ret, Diff{DiffInsert, line2})
	}

	return ret
}

// diffCleanupNewline looks for single edits surrounded on both sides by equalities which can be shifted sideways to align on newlines.
func diffCleanupNewline(diffs []Diff) []Diff {
	var ret []Diff

	for i := 0; i < len(diffs); i++ {
		if i < len(diffs)-2 && diffs[i].Type == DiffEqual && diffs[i+1].Type != DiffEqual && diffs[i+2].Type == DiffEqual {
			common := prefixWithNewline(diffs[i+1].Text, diffs[i+2].Text)

			// Convert ["=<equal>", "±<common\n><change>", "=<common\n><equal>"]
			// to ["=<equal><common\n>", "±<change><common\n>", "=<equal>"]
			if common != "" {
				ret = append(ret,
					Diff{DiffEqual, diffs[i].Text + common},
					Diff{diffs[i+1].Type, strings.TrimPrefix(diffs[i+1].Text, common) + common},
					Diff{DiffEqual, strings.TrimPrefix(diffs[i+2].Text, common)},
				)

				i += 2
				continue
			}
		}

		ret = append(ret, diffs[i])
	}

	return ret
}

// prefixWithNewline returns the longest common prefix between text1 and text2, up to and including a newline character.
// If text1 and text2 do not have a common prefix, or the common prefix does not include a newline character, the empty string is returned.
func prefixWithNewline(text1, text2 string) string {
	n := min(len(text1), len(text2))
	prefix := 0
	for prefix < n && text1[prefix] == text2[prefix] {
		prefix++
	}

	// A newline byte never occurs inside a multi-byte sequence, so cutting
	// after it always leaves valid UTF-8.
	if index := strings.LastIndexByte(text1[:prefix], '\n'); index != -1 {
		return text1[:index+1]
	}

	return ""
}

// reorderDeletionsFirst reorders changes so that deletions come before insertions, without crossing an equality boundary.
func reorderDeletionsFirst(diffs []Diff) []Diff {
	var (
		ret        []Diff
		deletions  []Diff
		insertions []Diff
	)

	for _, diff := range diffs {
		switch diff.Type {
		case DiffDelete:
			deletions = append(deletions, diff)
		case DiffInsert:
			insertions = append(insertions, diff)
		case DiffEqual:
			ret = append(ret, deletions...)
			deletions = nil

			ret = append(ret, insertions...)
			insertions = nil

			ret = append(ret, diff)
		}
	}

	ret = append(ret, deletions...)
	ret = append(ret, insertions...)

	return ret
}

// joinAdjacent drops empty diffs and concatenates neighbours of the same type.
// Runs are joined once, so a block of many single-line diffs stays linear.
func joinAdjacent(diffs []Diff) []Diff {
	ret := make([]Diff, 0, len(diffs))
	var run []string
	flush := func() {
		if len(run) > 1 {
			ret[len(ret)-1].Text = strings.Join(run, "")
		}
		run = run[:0]
	}

	for _, diff := range diffs {
		if diff.Text == "" {
			continue
		}
		if n := len(ret); n == 0 || ret[n-1].Type != diff.Type {
			flush()
			ret = append(ret, diff)
		}
		run = append(run, diff.Text)
	}
	flush()

	return ret
}
