// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package school

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type updateParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Name      string `flag:"name" desc:"school display name"`
	Address   string `flag:"address" desc:"street address"`
	Phone     string `flag:"phone" desc:"office phone"`
	Email     string `flag:"email" desc:"office email"`
	Website   string `flag:"website" desc:"public website"`
	Principal string `flag:"principal" desc:"principal's name"`
	Timezone  string `flag:"timezone" desc:"IANA timezone name"`
	StartTime string `flag:"start-time" desc:"school day start (HH:MM)"`
	EndTime   string `flag:"end-time" desc:"school day end (HH:MM)"`
}

func updateCommand() *cli.Command {
	var params updateParams

	return &cli.Command{
		Name:        "update",
		Summary:     "Update the school profile",
		Description: "Only the fields named by flags change; everything else is left as is.",
		Usage:       "rollcall school update [flags]",
		Examples: []cli.Example{
			{
				Description: "Change the school day hours",
				Command:     "rollcall school update --start-time 08:30 --end-time 15:30",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			update := schema.SchoolUpdate{
				Name:            optional(params.Name),
				Address:         optional(params.Address),
				Phone:           optional(params.Phone),
				Email:           optional(params.Email),
				Website:         optional(params.Website),
				PrincipalName:   optional(params.Principal),
				Timezone:        optional(params.Timezone),
				SchoolStartTime: optional(params.StartTime),
				SchoolEndTime:   optional(params.EndTime),
			}
			if update == (schema.SchoolUpdate{}) {
				return cli.Validation("nothing to update: pass at least one field flag")
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
			record, err := session.Client.UpdateSchool(ctx, update)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(record); done {
				return jsonErr
			}
			fmt.Fprintf(os.Stderr, "Updated %s\n", record.Name)
			return nil
		},
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
