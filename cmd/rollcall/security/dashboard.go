// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package security

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type dashboardParams struct {
	cli.JSONOutput
	cli.SessionFlags
}

func dashboardCommand() *cli.Command {
	var params dashboardParams

	return &cli.Command{
		Name:    "dashboard",
		Summary: "Show the gate dashboard snapshot",
		Usage:   "rollcall security dashboard [flags]",
		Params:  func() any { return &params },
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
			dash, err := session.Client.SecurityDashboard(ctx)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(dash); done {
				return jsonErr
			}

			fmt.Printf("students present:  %d\n", dash.StudentsPresent)
			fmt.Printf("staff present:     %d\n", dash.StaffPresent)
			fmt.Printf("visitors today:    %d\n", dash.VisitorsToday)
			fmt.Printf("active incidents:  %d\n", dash.ActiveIncidents)
			if len(dash.RecentCheckins) > 0 {
				fmt.Println()
				if err := printActivity(dash.RecentCheckins); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printActivity(rows []schema.RecentActivity) error {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "TIME\tNAME\tDIRECTION\tMETHOD")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Time, row.PersonName, row.CheckType, row.Method)
	}
	return tw.Flush()
}
