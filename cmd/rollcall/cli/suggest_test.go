// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"student", "student", 0},
		{"studnet", "student", 2},
		{"vistor", "visitor", 1},
		{"kitten", "sitting", 3},
	}

	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "student"},
		{Name: "visitor"},
		{Name: "gatepass"},
	}

	if got := suggestCommand("vistor", commands); got != "visitor" {
		t.Errorf("suggestCommand(vistor) = %q, want visitor", got)
	}
	if got := suggestCommand("zzzzzzzzz", commands); got != "" {
		t.Errorf("suggestCommand(zzzzzzzzz) = %q, want no suggestion", got)
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("status", "", "")
	flagSet.String("date", "", "")

	if got := suggestFlag([]string{"--staus", "absent"}, flagSet); got != "--status" {
		t.Errorf("suggestFlag(--staus) = %q, want --status", got)
	}

	// Known flags are skipped; only the unknown one gets a suggestion.
	if got := suggestFlag([]string{"--status", "absent", "--dtae", "x"}, flagSet); got != "--date" {
		t.Errorf("suggestFlag(--dtae) = %q, want --date", got)
	}

	if got := suggestFlag([]string{"--zzzzzzzzz"}, flagSet); got != "" {
		t.Errorf("suggestFlag(--zzzzzzzzz) = %q, want no suggestion", got)
	}
}
