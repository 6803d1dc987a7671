// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package gatepass

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

type listParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Status string `flag:"status" desc:"filter by workflow state (pending, approved, denied, active, completed, expired, cancelled)"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List gate passes",
		Usage:   "rollcall gatepass list [flags]",
		Examples: []cli.Example{
			{
				Description: "Passes waiting for a decision",
				Command:     "rollcall gatepass list --status pending",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			var status schema.GatePassStatus
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
			passes, err := session.Client.ListGatePasses(ctx, status)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(passes); done {
				return jsonErr
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTUDENT\tTYPE\tREASON\tREQUESTED\tSTATUS")
			for _, p := range passes {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Student.FullName, p.Type, p.Reason, p.RequestedTime, p.Status)
			}
			return tw.Flush()
		},
	}
}
