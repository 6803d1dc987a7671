// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package school

import (
	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

// Command returns the "school" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "school",
		Summary: "View and edit the school profile",
		Subcommands: []*cli.Command{
			showCommand(),
			updateCommand(),
			statsCommand(),
		},
	}
}
