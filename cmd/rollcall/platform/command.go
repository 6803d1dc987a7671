// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"strconv"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

// Command returns the "admin" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "admin",
		Summary: "Platform super-admin tools",
		Subcommands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			statsCommand(),
			schoolsCommand(),
			suspendCommand(),
			activateCommand(),
		},
	}
}

func parseSchoolID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, cli.Validation("school ID is required")
	}
	if len(args) > 1 {
		return 0, cli.Validation("unexpected argument: %s", args[1])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, cli.Validation("invalid school ID %q", args[0])
	}
	return id, nil
}
