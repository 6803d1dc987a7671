// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package gatepass

import (
	"strconv"
	"strings"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

// Command returns the "gatepass" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "gatepass",
		Summary: "Manage student gate passes",
		Subcommands: []*cli.Command{
			listCommand(),
			showCommand(),
			createCommand(),
			approveCommand(),
			denyCommand(),
			deleteCommand(),
		},
	}
}

func parseID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, cli.Validation("gate pass ID is required")
	}
	if len(args) > 1 {
		return 0, cli.Validation("unexpected argument: %s", args[1])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, cli.Validation("invalid gate pass ID %q", args[0])
	}
	return id, nil
}

func parseStatus(value string) (schema.GatePassStatus, error) {
	status := schema.GatePassStatus(strings.ToLower(value))
	switch status {
	case schema.GatePassPending, schema.GatePassApproved, schema.GatePassDenied,
		schema.GatePassActive, schema.GatePassCompleted, schema.GatePassExpired,
		schema.GatePassCancelled:
		return status, nil
	}
	return "", cli.Validation("unknown gate pass status %q", value)
}
