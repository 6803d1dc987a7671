// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package visitor

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

type listParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Status string `flag:"status" desc:"filter by workflow state (pending, approved, denied, checked_in, checked_out, expired, cancelled)"`
	Date   string `flag:"date,d" desc:"filter by visit date (ISO date)"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List visitors",
		Usage:   "rollcall visitor list [flags]",
		Examples: []cli.Example{
			{
				Description: "Visitors currently on the premises",
				Command:     "rollcall visitor list --status checked_in",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			var status schema.VisitorStatus
			if params.Status != "" {
				parsed, err := parseStatus(params.Status)
				if err != nil {
					return err
				}
				status = parsed
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
			visitors, err := session.Client.ListVisitors(ctx, api.VisitorFilter{
				Status: status,
				Date:   params.Date,
			})
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(visitors); done {
				return jsonErr
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPURPOSE\tHOST\tENTRY\tSTATUS")
			for _, v := range visitors {
				host := v.HostUserName
				if host == "" {
					host = v.HostStudentName
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					v.ID, v.FullName, v.VisitorType, v.Purpose, host, v.RequestedEntryTime, v.Status)
			}
			return tw.Flush()
		},
	}
}
