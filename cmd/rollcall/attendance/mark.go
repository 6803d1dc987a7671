// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type markParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Date  string `flag:"date,d" desc:"ISO date (default: today, server-side)"`
	Notes string `flag:"notes" desc:"free-form note attached to the mark"`
}

func markCommand() *cli.Command {
	var params markParams

	return &cli.Command{
		Name:    "mark",
		Summary: "Mark one student's attendance",
		Usage:   "rollcall attendance mark <student-id> <status> [flags]",
		Examples: []cli.Example{
			{
				Description: "Mark student 42 late with a note",
				Command:     "rollcall attendance mark 42 late --notes 'bus breakdown'",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 2 {
				return cli.Validation("expected <student-id> <status>")
			}
			studentID, err := strconv.Atoi(args[0])
			if err != nil || studentID <= 0 {
				return cli.Validation("invalid student ID %q", args[0])
			}
			status, err := parseMark(args[1])
			if err != nil {
				return err
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
			record, err := session.Client.MarkAttendance(ctx, schema.AttendanceCreate{
				StudentID: studentID,
				Date:      params.Date,
				Status:    status,
				Notes:     params.Notes,
			})
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(record); done {
				return jsonErr
			}
			fmt.Fprintf(os.Stderr, "Marked %s %s for %s\n", record.Student.FullName, record.Status, record.Date)
			return nil
		},
	}
}
