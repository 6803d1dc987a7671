// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

type statsParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Date string `flag:"date,d" desc:"ISO date (default: today, server-side)"`
}

func statsCommand() *cli.Command {
	var params statsParams

	return &cli.Command{
		Name:    "stats",
		Summary: "Show the school-wide attendance summary",
		Usage:   "rollcall attendance stats [flags]",
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
			stats, err := session.Client.AttendanceStats(ctx, params.Date)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(stats); done {
				return jsonErr
			}

			fmt.Printf("students:  %d\n", stats.TotalStudents)
			fmt.Printf("present:   %d\n", stats.Present)
			fmt.Printf("absent:    %d\n", stats.Absent)
			fmt.Printf("late:      %d\n", stats.Late)
			fmt.Printf("excused:   %d\n", stats.Excused)
			fmt.Printf("rate:      %.1f%%\n", stats.AttendanceRate)
			return nil
		},
	}
}

func byClassCommand() *cli.Command {
	var params statsParams

	return &cli.Command{
		Name:    "by-class",
		Summary: "Show per-class attendance for a date",
		Usage:   "rollcall attendance by-class [flags]",
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
			classes, err := session.Client.AttendanceByClass(ctx, params.Date)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(classes); done {
				return jsonErr
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "CLASS\tSTUDENTS\tPRESENT\tABSENT\tRATE")
			for _, c := range classes {
				fmt.Fprintf(tw, "%s-%s\t%d\t%d\t%d\t%.1f%%\n",
					c.ClassName, c.Section, c.TotalStudents, c.Present, c.Absent, c.AttendanceRate)
			}
			return tw.Flush()
		},
	}
}
