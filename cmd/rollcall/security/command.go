// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package security

import (
	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

// Command returns the "security" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "security",
		Summary: "Gate-side security tools",
		Subcommands: []*cli.Command{
			dashboardCommand(),
			searchCommand(),
			verifyCommand(),
			markCommand(),
			recentCommand(),
		},
	}
}
