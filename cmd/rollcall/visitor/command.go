// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package visitor

import (
	"strconv"
	"strings"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

// Command returns the "visitor" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "visitor",
		Summary: "Manage school visitors",
		Subcommands: []*cli.Command{
			listCommand(),
			showCommand(),
			registerCommand(),
			preRegisterCommand(),
			approveCommand(),
			denyCommand(),
			checkInCommand(),
			checkOutCommand(),
		},
	}
}

func parseID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, cli.Validation("visitor ID is required")
	}
	if len(args) > 1 {
		return 0, cli.Validation("unexpected argument: %s", args[1])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, cli.Validation("invalid visitor ID %q", args[0])
	}
	return id, nil
}

func parseStatus(value string) (schema.VisitorStatus, error) {
	status := schema.VisitorStatus(strings.ToLower(value))
	switch status {
	case schema.VisitorPending, schema.VisitorApproved, schema.VisitorDenied,
		schema.VisitorCheckedIn, schema.VisitorCheckedOut, schema.VisitorExpired,
		schema.VisitorCancelled:
		return status, nil
	}
	return "", cli.Validation("unknown visitor status %q", value)
}
