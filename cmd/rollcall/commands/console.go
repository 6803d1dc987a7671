// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/console"
)

type consoleParams struct {
	cli.SessionFlags
}

func consoleCommand() *cli.Command {
	var params consoleParams

	return &cli.Command{
		Name:    "console",
		Summary: "Open the interactive console",
		Description: `Open the full-screen console for the current school.

The console renders from the saved session immediately and verifies it
against the backend in the background. If the token turns out to be
stale, the purge hook clears it and the next action reports the session
as expired; a flaky network alone never logs you out.`,
		Usage: "rollcall console [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the console for the default school",
				Command:     "rollcall console",
			},
			{
				Description: "Open the console for a specific school",
				Command:     "rollcall console --tenant greenfield",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			session, err := cli.LoadSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			// Verify the restored session off the UI thread. The
			// dispatch lands in the state store, and the console picks
			// it up on its next snapshot.
			go func() {
				confirmCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				if err := session.Boot.Confirm(confirmCtx, session.Client); err != nil {
					logger.Debug("session confirmation failed", "error", err)
				}
			}()

			return console.Run(session.State, session.Client)
		},
	}
}
