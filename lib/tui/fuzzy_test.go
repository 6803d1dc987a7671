// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
)

func TestFuzzyMatchBasic(t *testing.T) {
	result := FuzzyMatch("Priya Raman 10-A", []rune("raman"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) == 0 {
		t.Fatal("expected non-empty match positions")
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "pra" matches across "Priya Raman": non-contiguous characters
	// still score.
	result := FuzzyMatch("Priya Raman", []rune("pra"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous match")
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("Priya Raman", []rune("xyz"), nil)
	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("Positions = %v, want empty", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	result := FuzzyMatch("GATE PASS", []rune("gate"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score %d", result.Score)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := FuzzyMatch("anything", nil, nil)
	if result.Score != 0 {
		t.Errorf("Score = %d for empty pattern", result.Score)
	}
}

func TestFuzzyMatchPositionsAscending(t *testing.T) {
	result := FuzzyMatch("checked_in visitor", []rune("cv"), NewSlab())
	if result.Score <= 0 {
		t.Fatal("expected match")
	}
	for i := 1; i < len(result.Positions); i++ {
		if result.Positions[i-1] >= result.Positions[i] {
			t.Fatalf("positions not ascending: %v", result.Positions)
		}
	}
}
