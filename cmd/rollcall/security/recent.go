// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package security

import (
	"context"
	"log/slog"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

type recentParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Limit int `flag:"limit,n" desc:"maximum rows to return" default:"20"`
}

func recentCommand() *cli.Command {
	var params recentParams

	return &cli.Command{
		Name:    "recent",
		Summary: "Show the recent gate activity feed",
		Usage:   "rollcall security recent [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if params.Limit <= 0 {
				return cli.Validation("--limit must be positive")
			}

			session, err := cli.LoadSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			rows, err := session.Client.RecentGateActivity(ctx, params.Limit)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(rows); done {
				return jsonErr
			}
			return printActivity(rows)
		},
	}
}
