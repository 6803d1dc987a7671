// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package student

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/api"
)

type listParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Search  string `flag:"search,s" desc:"match against name and student ID"`
	Class   string `flag:"class" desc:"filter by class name"`
	Section string `flag:"section" desc:"filter by section"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List students",
		Usage:   "rollcall student list [flags]",
		Examples: []cli.Example{
			{
				Description: "List the whole roster",
				Command:     "rollcall student list",
			},
			{
				Description: "List one class section",
				Command:     "rollcall student list --class 10 --section A",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			session, err := cli.LoadSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			students, err := session.Client.ListStudents(ctx, api.StudentFilter{
				Search:    params.Search,
				ClassName: params.Class,
				Section:   params.Section,
			})
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(students); done {
				return jsonErr
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTUDENT ID\tNAME\tCLASS\tGUARDIAN\tSTATUS")
			for _, s := range students {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s-%s\t%s\t%s\n",
					s.ID, s.StudentID, s.FullName, s.ClassName, s.Section, s.GuardianName, s.Status)
			}
			return tw.Flush()
		},
	}
}
