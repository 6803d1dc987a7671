// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package visitor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type registerParams struct {
	cli.JSONOutput
	cli.SessionFlags
	FirstName   string `flag:"first-name" desc:"first name"`
	LastName    string `flag:"last-name" desc:"last name"`
	Phone       string `flag:"phone" desc:"contact phone"`
	Email       string `flag:"email" desc:"contact email"`
	Type        string `flag:"type" desc:"visitor type (guest, vendor, contractor, guardian)" default:"guest"`
	Purpose     string `flag:"purpose" desc:"reason for the visit"`
	HostUser    int    `flag:"host-user" desc:"ID of the staff member being visited"`
	HostStudent int    `flag:"host-student" desc:"ID of the student being visited"`
	Entry       string `flag:"entry" desc:"requested entry time (ISO timestamp)"`
	Exit        string `flag:"exit" desc:"expected exit time (ISO timestamp)"`
	Vehicle     string `flag:"vehicle" desc:"vehicle registration number"`
	Company     string `flag:"company" desc:"company name"`
}

func registerCommand() *cli.Command {
	var params registerParams

	return &cli.Command{
		Name:    "register",
		Summary: "Register a walk-in visitor",
		Usage:   "rollcall visitor register --first-name <name> --last-name <name> --phone <phone> --purpose <text> --entry <timestamp> [flags]",
		Examples: []cli.Example{
			{
				Description: "Register a vendor arriving now",
				Command:     "rollcall visitor register --first-name Dev --last-name Kumar --phone 555-0101 --type vendor --purpose 'cafeteria supplies' --entry 2026-03-02T09:00:00",
			},
		},
		Params: func() any { return &params },
		Run:    registerRun(&params, (*api.Client).RegisterVisitor, "Registered"),
	}
}

func preRegisterCommand() *cli.Command {
	var params registerParams

	return &cli.Command{
		Name:        "pre-register",
		Summary:     "Pre-register an expected visitor",
		Description: "Pre-registered visitors skip the approval queue at the gate; security only confirms identity and checks them in.",
		Usage:       "rollcall visitor pre-register --first-name <name> --last-name <name> --phone <phone> --purpose <text> --entry <timestamp> [flags]",
		Params:      func() any { return &params },
		Run:         registerRun(&params, (*api.Client).PreRegisterVisitor, "Pre-registered"),
	}
}

func registerRun(params *registerParams, submit func(*api.Client, context.Context, schema.VisitorCreate) (*schema.Visitor, error), verb string) func(context.Context, []string, *slog.Logger) error {
	return func(ctx context.Context, args []string, logger *slog.Logger) error {
		if len(args) > 0 {
			return cli.Validation("unexpected argument: %s", args[0])
		}
		if params.FirstName == "" || params.LastName == "" {
			return cli.Validation("--first-name and --last-name are required")
		}
		if params.Phone == "" {
			return cli.Validation("--phone is required")
		}
		if params.Purpose == "" {
			return cli.Validation("--purpose is required")
		}
		if params.Entry == "" {
			return cli.Validation("--entry is required")
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
		record, err := submit(session.Client, ctx, schema.VisitorCreate{
			FirstName:          params.FirstName,
			LastName:           params.LastName,
			Email:              params.Email,
			Phone:              params.Phone,
			VisitorType:        params.Type,
			Purpose:            params.Purpose,
			HostUserID:         params.HostUser,
			HostStudentID:      params.HostStudent,
			RequestedEntryTime: params.Entry,
			ExpectedExitTime:   params.Exit,
			VehicleNumber:      params.Vehicle,
			CompanyName:        params.Company,
		})
		if err != nil {
			return cli.FromAPI(err)
		}

		if done, jsonErr := params.EmitJSON(record); done {
			return jsonErr
		}
		fmt.Fprintf(os.Stderr, "%s %s with ID %d (%s)\n", verb, record.FullName, record.ID, record.Status)
		return nil
	}
}
