// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package student

import (
	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

// Command returns the "student" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "student",
		Summary: "Manage the student roster",
		Subcommands: []*cli.Command{
			listCommand(),
			showCommand(),
			createCommand(),
			updateCommand(),
			deleteCommand(),
		},
	}
}
