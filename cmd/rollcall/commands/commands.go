// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete rollcall CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	attendancecmd "github.com/rollcall-hq/rollcall/cmd/rollcall/attendance"
	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	gatepasscmd "github.com/rollcall-hq/rollcall/cmd/rollcall/gatepass"
	platformcmd "github.com/rollcall-hq/rollcall/cmd/rollcall/platform"
	schoolcmd "github.com/rollcall-hq/rollcall/cmd/rollcall/school"
	securitycmd "github.com/rollcall-hq/rollcall/cmd/rollcall/security"
	studentcmd "github.com/rollcall-hq/rollcall/cmd/rollcall/student"
	usercmd "github.com/rollcall-hq/rollcall/cmd/rollcall/user"
	visitorcmd "github.com/rollcall-hq/rollcall/cmd/rollcall/visitor"
	"github.com/rollcall-hq/rollcall/lib/version"
)

// Root builds and returns the complete rollcall CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "rollcall",
		Description: `Rollcall: school attendance and gate operations from the terminal.

Manage students, daily attendance, gate passes, and visitors for a
school, or open the interactive console for a live view.`,
		Subcommands: []*cli.Command{
			cli.LoginCommand(),
			cli.LogoutCommand(),
			cli.WhoAmICommand(),
			cli.PasswdCommand(),
			consoleCommand(),
			studentcmd.Command(),
			usercmd.Command(),
			attendancecmd.Command(),
			gatepasscmd.Command(),
			visitorcmd.Command(),
			schoolcmd.Command(),
			securitycmd.Command(),
			platformcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("rollcall %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Authenticate to a school (saves session locally)",
				Command:     "rollcall login asha@greenfield.example --tenant greenfield",
			},
			{
				Description: "Open the interactive console",
				Command:     "rollcall console",
			},
			{
				Description: "Mark a whole class in one request",
				Command:     "rollcall attendance bulk --file 10a-register.json",
			},
			{
				Description: "See who is waiting at the gate",
				Command:     "rollcall visitor list --status pending",
			},
			{
				Description: "Approve a gate pass",
				Command:     "rollcall gatepass approve 17 --notes 'guardian confirmed by phone'",
			},
		},
	}
}
