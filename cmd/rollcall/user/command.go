// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"strconv"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

// Command returns the "user" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "user",
		Summary: "Manage school user accounts",
		Subcommands: []*cli.Command{
			listCommand(),
			teachersCommand(),
			parentsCommand(),
			showCommand(),
			createCommand(),
			updateCommand(),
			deleteCommand(),
		},
	}
}

func parseID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, cli.Validation("user ID is required")
	}
	if len(args) > 1 {
		return 0, cli.Validation("unexpected argument: %s", args[1])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, cli.Validation("invalid user ID %q", args[0])
	}
	return id, nil
}
