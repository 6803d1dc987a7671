// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package security

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
	cli.SessionFlags
	Type     string `flag:"type" desc:"person type (student, staff)" default:"student"`
	Check    string `flag:"check" desc:"direction (check_in, check_out)" default:"check_in"`
	Method   string `flag:"method" desc:"how identity was verified (manual, rfid, search)" default:"manual"`
	Location string `flag:"location" desc:"gate or entrance name"`
	Notes    string `flag:"notes" desc:"free-form note"`
}

func markCommand() *cli.Command {
	var params markParams

	return &cli.Command{
		Name:    "mark",
		Summary: "Record a gate check-in or check-out",
		Usage:   "rollcall security mark <person-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Check a student in at the main gate after an RFID scan",
				Command:     "rollcall security mark 42 --method rfid --location 'main gate'",
			},
			{
				Description: "Check a staff member out",
				Command:     "rollcall security mark 7 --type staff --check check_out",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("person ID is required")
			}
			personID, err := strconv.Atoi(args[0])
			if err != nil || personID <= 0 {
				return cli.Validation("invalid person ID %q", args[0])
			}
			if params.Type != "student" && params.Type != "staff" {
				return cli.Validation("unknown person type %q: expected student or staff", params.Type)
			}
			if params.Check != "check_in" && params.Check != "check_out" {
				return cli.Validation("unknown check type %q: expected check_in or check_out", params.Check)
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
			err = session.Client.MarkGate(ctx, schema.GateMark{
				PersonID:   personID,
				PersonType: params.Type,
				CheckType:  params.Check,
				Method:     params.Method,
				Location:   params.Location,
				Notes:      params.Notes,
			})
			if err != nil {
				return cli.FromAPI(err)
			}

			fmt.Fprintf(os.Stderr, "Recorded %s for %s %d\n", params.Check, params.Type, personID)
			return nil
		},
	}
}
