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

type createParams struct {
	cli.JSONOutput
	cli.SessionFlags
	StudentID     string `flag:"student-id" desc:"school-assigned student identifier"`
	FirstName     string `flag:"first-name" desc:"first name"`
	LastName      string `flag:"last-name" desc:"last name"`
	Class         string `flag:"class" desc:"class name"`
	Section       string `flag:"section" desc:"section"`
	Email         string `flag:"email" desc:"contact email"`
	Phone         string `flag:"phone" desc:"contact phone"`
	DateOfBirth   string `flag:"date-of-birth" desc:"date of birth (YYYY-MM-DD)"`
	Address       string `flag:"address" desc:"home address"`
	GuardianName  string `flag:"guardian-name" desc:"guardian full name"`
	GuardianPhone string `flag:"guardian-phone" desc:"guardian phone"`
	GuardianEmail string `flag:"guardian-email" desc:"guardian email"`
	AdmissionDate string `flag:"admission-date" desc:"admission date (YYYY-MM-DD)"`
}

func createCommand() *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Enroll a student",
		Usage:   "rollcall student create --student-id <id> --first-name <name> --last-name <name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Enroll a student into class 10-A",
				Command:     "rollcall student create --student-id GF-1042 --first-name Priya --last-name Raman --class 10 --section A",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.StudentID == "" {
				return cli.Validation("--student-id is required")
			}
			if params.FirstName == "" || params.LastName == "" {
				return cli.Validation("--first-name and --last-name are required")
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
			record, err := session.Client.CreateStudent(ctx, schema.StudentCreate{
				StudentID:     params.StudentID,
				FirstName:     params.FirstName,
				LastName:      params.LastName,
				Email:         params.Email,
				Phone:         params.Phone,
				DateOfBirth:   params.DateOfBirth,
				Address:       params.Address,
				GuardianName:  params.GuardianName,
				GuardianPhone: params.GuardianPhone,
				GuardianEmail: params.GuardianEmail,
				ClassName:     params.Class,
				Section:       params.Section,
				AdmissionDate: params.AdmissionDate,
			})
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(record); done {
				return jsonErr
			}
			fmt.Fprintf(os.Stderr, "Enrolled %s (%s) with ID %d\n", record.FullName, record.StudentID, record.ID)
			return nil
		},
	}
}
