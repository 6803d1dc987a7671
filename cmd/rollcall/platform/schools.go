// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package platform

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

type schoolsParams struct {
	cli.JSONOutput
	cli.SessionFlags
}

func schoolsCommand() *cli.Command {
	var params schoolsParams

	return &cli.Command{
		Name:    "schools",
		Summary: "List all schools on the platform",
		Usage:   "rollcall admin schools [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			session, err := cli.LoadAdminSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			schools, err := session.Client.ListSchools(ctx)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(schools); done {
				return jsonErr
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSLUG\tSTUDENTS\tTEACHERS\tPLAN\tACTIVE")
			for _, s := range schools {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\t%t\n",
					s.ID, s.Name, s.Slug, s.TotalStudents, s.TotalTeachers, s.Plan, s.IsActive)
			}
			return tw.Flush()
		},
	}
}

func suspendCommand() *cli.Command {
	var params schoolsParams

	return &cli.Command{
		Name:    "suspend",
		Summary: "Suspend a school's access",
		Usage:   "rollcall admin suspend <school-id> [flags]",
		Params:  func() any { return &params },
		Run:     lifecycleRun(&params, "Suspended", (*api.AdminClient).SuspendSchool),
	}
}

func activateCommand() *cli.Command {
	var params schoolsParams

	return &cli.Command{
		Name:    "activate",
		Summary: "Reactivate a suspended school",
		Usage:   "rollcall admin activate <school-id> [flags]",
		Params:  func() any { return &params },
		Run:     lifecycleRun(&params, "Activated", (*api.AdminClient).ActivateSchool),
	}
}

func lifecycleRun(params *schoolsParams, verb string, call func(*api.AdminClient, context.Context, int) (*schema.SchoolSummary, error)) func(context.Context, []string, *slog.Logger) error {
	return func(ctx context.Context, args []string, logger *slog.Logger) error {
		id, err := parseSchoolID(args)
		if err != nil {
			return err
		}

		session, err := cli.LoadAdminSession(params.SessionFlags, logger)
		if err != nil {
			return err
		}
		if err := session.RequireAuth(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		school, err := call(session.Client, ctx, id)
		if err != nil {
			return cli.FromAPI(err)
		}

		if done, jsonErr := params.EmitJSON(school); done {
			return jsonErr
		}
		fmt.Fprintf(os.Stderr, "%s %s (%s)\n", verb, school.Name, school.Slug)
		return nil
	}
}
