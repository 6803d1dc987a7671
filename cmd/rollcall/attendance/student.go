// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package attendance

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

type studentParams struct {
	cli.JSONOutput
	cli.SessionFlags
}

func studentCommand() *cli.Command {
	var params studentParams

	return &cli.Command{
		Name:    "student",
		Summary: "Show one student's attendance history",
		Usage:   "rollcall attendance student <student-id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("student ID is required")
			}
			studentID, err := strconv.Atoi(args[0])
			if err != nil || studentID <= 0 {
				return cli.Validation("invalid student ID %q", args[0])
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
			records, err := session.Client.StudentAttendance(ctx, studentID)
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
