// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package student

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
	StudentID     string `flag:"student-id" desc:"school-assigned student identifier"`
	FirstName     string `flag:"first-name" desc:"first name"`
	LastName      string `flag:"last-name" desc:"last name"`
	Class         string `flag:"class" desc:"class name"`
	Section       string `flag:"section" desc:"section"`
	Email         string `flag:"email" desc:"contact email"`
	Phone         string `flag:"phone" desc:"contact phone"`
	Address       string `flag:"address" desc:"home address"`
	GuardianName  string `flag:"guardian-name" desc:"guardian full name"`
	GuardianPhone string `flag:"guardian-phone" desc:"guardian phone"`
	GuardianEmail string `flag:"guardian-email" desc:"guardian email"`
	Status        string `flag:"status" desc:"active, inactive, or graduated"`
}

func updateCommand() *cli.Command {
	var params updateParams

	return &cli.Command{
		Name:        "update",
		Summary:     "Update a student record",
		Description: "Only the fields named by flags change; everything else is left as is.",
		Usage:       "rollcall student update <id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Move a student to class 11-B",
				Command:     "rollcall student update 42 --class 11 --section B",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			id, err := parseID(args, "student")
			if err != nil {
				return err
			}

			update := schema.StudentUpdate{
				StudentID:     optional(params.StudentID),
				FirstName:     optional(params.FirstName),
				LastName:      optional(params.LastName),
				Email:         optional(params.Email),
				Phone:         optional(params.Phone),
				Address:       optional(params.Address),
				GuardianName:  optional(params.GuardianName),
				GuardianPhone: optional(params.GuardianPhone),
				GuardianEmail: optional(params.GuardianEmail),
				ClassName:     optional(params.Class),
				Section:       optional(params.Section),
				Status:        optional(params.Status),
			}
			if update == (schema.StudentUpdate{}) {
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
			record, err := session.Client.UpdateStudent(ctx, id, update)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(record); done {
				return jsonErr
			}
			fmt.Fprintf(os.Stderr, "Updated %s (%s)\n", record.FullName, record.StudentID)
			return nil
		},
	}
}

// optional turns a flag value into an update field. Empty means the
// flag was not passed, so the field stays untouched server-side.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
