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
	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type listParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Date   string `flag:"date,d" desc:"ISO date (default: today, server-side)"`
	Class  string `flag:"class" desc:"filter by class name"`
	Status string `flag:"status" desc:"filter by mark (present, absent, late, excused)"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List attendance records",
		Usage:   "rollcall attendance list [flags]",
		Examples: []cli.Example{
			{
				Description: "Absentees in class 10 today",
				Command:     "rollcall attendance list --class 10 --status absent",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			var status schema.AttendanceStatus
			if params.Status != "" {
				parsed, err := parseMark(params.Status)
				if err != nil {
					return err
				}
				status = parsed
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
			records, err := session.Client.ListAttendance(ctx, api.AttendanceFilter{
				Date:      params.Date,
				ClassName: params.Class,
				Status:    status,
			})
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(records); done {
				return jsonErr
			}
			return printRecords(records)
		},
	}
}

func printRecords(records []schema.Attendance) error {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSTUDENT\tCLASS\tSTATUS\tIN\tOUT\tMARKED BY")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Date, r.Student.FullName, r.Student.ClassName, r.Status,
			r.CheckInTime, r.CheckOutTime, r.MarkedBy)
	}
	return tw.Flush()
}
