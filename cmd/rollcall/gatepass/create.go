// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package gatepass

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

type createParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Type   string `flag:"type" desc:"pass type (early_exit, late_arrival, temporary)" default:"early_exit"`
	Reason string `flag:"reason" desc:"why the student needs to leave"`
	Time   string `flag:"time" desc:"requested exit time (ISO timestamp)"`
	Notes  string `flag:"notes" desc:"free-form note for the approver"`
}

func createCommand() *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Request a gate pass for a student",
		Usage:   "rollcall gatepass create <student-id> --reason <text> --time <timestamp> [flags]",
		Examples: []cli.Example{
			{
				Description: "Request an early exit for a dental appointment",
				Command:     "rollcall gatepass create 42 --reason 'dental appointment' --time 2026-03-02T13:30:00",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("student ID is required")
			}
			studentID, err := strconv.Atoi(args[0])
			if err != nil || studentID <= 0 {
				return cli.Validation("invalid student ID %q", args[0])
			}
			if params.Reason == "" {
				return cli.Validation("--reason is required")
			}
			if params.Time == "" {
				return cli.Validation("--time is required")
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
			pass, err := session.Client.CreateGatePass(ctx, schema.GatePassCreate{
				StudentID:     studentID,
				Type:          params.Type,
				Reason:        params.Reason,
				RequestedTime: params.Time,
				Notes:         params.Notes,
			})
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(pass); done {
				return jsonErr
			}
			fmt.Fprintf(os.Stderr, "Created gate pass %d for %s (%s)\n", pass.ID, pass.Student.FullName, pass.Status)
			return nil
		},
	}
}
