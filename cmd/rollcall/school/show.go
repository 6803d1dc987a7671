// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package school

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

type showParams struct {
	cli.JSONOutput
	cli.SessionFlags
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show the school profile",
		Usage:   "rollcall school show [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			session, err := cli.LoadSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			record, err := session.Client.CurrentSchool(ctx)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(record); done {
				return jsonErr
			}

			fmt.Printf("%s (%s)\n", record.Name, record.Slug)
			if record.Address != "" {
				fmt.Printf("address:    %s\n", record.Address)
			}
			if record.Phone != "" {
				fmt.Printf("phone:      %s\n", record.Phone)
			}
			if record.Email != "" {
				fmt.Printf("email:      %s\n", record.Email)
			}
			if record.PrincipalName != "" {
				fmt.Printf("principal:  %s\n", record.PrincipalName)
			}
			fmt.Printf("hours:      %s to %s (%s)\n", record.SchoolStartTime, record.SchoolEndTime, record.Timezone)
			fmt.Printf("students:   %d\n", record.TotalStudents)
			fmt.Printf("teachers:   %d\n", record.TotalTeachers)
			fmt.Printf("plan:       %s\n", record.Plan)
			fmt.Printf("active:     %t\n", record.IsActive)
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "stats",
		Summary: "Show today's dashboard numbers",
		Usage:   "rollcall school stats [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			session, err := cli.LoadSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			stats, err := session.Client.SchoolStats(ctx)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(stats); done {
				return jsonErr
			}

			fmt.Printf("students:       %d (%d active)\n", stats.TotalStudents, stats.ActiveStudents)
			fmt.Printf("teachers:       %d\n", stats.TotalTeachers)
			fmt.Printf("staff:          %d\n", stats.TotalStaff)
			fmt.Printf("present today:  %d\n", stats.PresentToday)
			fmt.Printf("absent today:   %d\n", stats.AbsentToday)
			fmt.Printf("pending passes: %d\n", stats.PendingGatePasses)
			return nil
		},
	}
}
