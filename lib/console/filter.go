// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"

	"github.com/rollcall-hq/rollcall/lib/tui"
)

// FilterModel is the fzf-style filter bar shared by every list tab.
// The tab chooses the base set; the filter narrows it client-side
// without another round trip.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus (the
	// user pressed / to start typing).
	Active bool

	slab *util.Slab
}

// scoredRow pairs a row index in the unfiltered list with its match
// score.
type scoredRow struct {
	Index int
	Score int
}

// Apply fuzzy-matches the query against each row's searchable text
// and returns the surviving indices, best match first. An empty query
// keeps every row in its original order.
func (filter *FilterModel) Apply(rows []string) []int {
	if filter.Input == "" {
		indices := make([]int, len(rows))
		for i := range rows {
			indices[i] = i
		}
		return indices
	}
	if filter.slab == nil {
		filter.slab = tui.NewSlab()
	}

	pattern := []rune(filter.Input)
	var matched []scoredRow
	for i, row := range rows {
		result := tui.FuzzyMatch(row, pattern, filter.slab)
		if result.Score > 0 {
			matched = append(matched, scoredRow{Index: i, Score: result.Score})
		}
	}
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].Score > matched[b].Score
	})

	indices := make([]int, len(matched))
	for i, row := range matched {
		indices[i] = row.Index
	}
	return indices
}

// HandleRune appends a typed character to the query.
func (filter *FilterModel) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character. Returns false when the
// query was already empty.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and deactivates the filter.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar: a cursor-terminated input while
// active, a faint reminder while inactive with text, nothing at all
// otherwise.
func (filter *FilterModel) View(theme tui.Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width).
			Render(" / " + filter.Input + cursor)
	}
	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width).
		Render(" filter: " + filter.Input)
}
