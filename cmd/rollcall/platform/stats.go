// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

type statsParams struct {
	cli.JSONOutput
	cli.SessionFlags
}

func statsCommand() *cli.Command {
	var params statsParams

	return &cli.Command{
		Name:    "stats",
		Summary: "Show platform-wide statistics",
		Usage:   "rollcall admin stats [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			session, err := cli.LoadAdminSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			stats, err := session.Client.SystemStats(ctx)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(stats); done {
				return jsonErr
			}

			fmt.Printf("schools:   %d (%d active)\n", stats.TotalSchools, stats.ActiveSchools)
			fmt.Printf("users:     %d (%d active)\n", stats.TotalUsers, stats.ActiveUsers)
			fmt.Printf("students:  %d (%d active)\n", stats.TotalStudents, stats.ActiveStudents)
			fmt.Printf("uptime:    %.1f hours\n", stats.SystemUptimeHours)
			fmt.Printf("storage:   %.1f / %.1f GB\n", stats.StorageUsedGB, stats.StorageTotalGB)
			fmt.Printf("tickets:   %d open of %d\n", stats.OpenSupportTicket, stats.TotalSupportTicket)
			return nil
		},
	}
}
