// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package attendance

import (
	"strings"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

// Command returns the "attendance" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "attendance",
		Summary: "Mark and report daily attendance",
		Subcommands: []*cli.Command{
			listCommand(),
			markCommand(),
			bulkCommand(),
			statsCommand(),
			byClassCommand(),
			studentCommand(),
		},
	}
}

func parseMark(value string) (schema.AttendanceStatus, error) {
	status := schema.AttendanceStatus(strings.ToLower(value))
	if !schema.ValidAttendanceStatus(status) {
		return "", cli.Validation("unknown attendance status %q: expected present, absent, late, or excused", value)
	}
	return status, nil
}
