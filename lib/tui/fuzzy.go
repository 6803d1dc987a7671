// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching a pattern against one line of
// text. Score is zero for a non-match; Positions holds the matched
// rune indices in ascending order for highlight rendering.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// NewSlab allocates the scratch memory fzf's matcher reuses across
// calls. One slab per matching loop; slabs are not goroutine-safe.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// FuzzyMatch scores pattern against text using fzf's V2 algorithm.
// Matching is case-insensitive: both sides are lowercased before
// scoring, so callers pass the pattern as typed. An empty pattern
// never matches; filtering nothing is the caller's fast path.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	lowered := make([]rune, len(pattern))
	for i, r := range pattern {
		lowered[i] = toLowerRune(r)
	}
	chars := util.ToChars([]byte(strings.ToLower(text)))

	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	var matched []int
	if positions != nil {
		matched = append(matched, *positions...)
		sort.Ints(matched)
	}
	return FuzzyResult{Score: result.Score, Positions: matched}
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
