// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package visitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

type showParams struct {
	cli.JSONOutput
	cli.SessionFlags
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show one visitor record",
		Usage:   "rollcall visitor show <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			id, err := parseID(args)
			if err != nil {
				return err
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
			record, err := session.Client.GetVisitor(ctx, id)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(record); done {
				return jsonErr
			}

			fmt.Printf("%s (%s)\n", record.FullName, record.VisitorType)
			fmt.Printf("purpose:   %s\n", record.Purpose)
			fmt.Printf("phone:     %s\n", record.Phone)
			fmt.Printf("status:    %s\n", record.Status)
			if record.HostUserName != "" {
				fmt.Printf("host:      %s\n", record.HostUserName)
			}
			if record.HostStudentName != "" {
				fmt.Printf("student:   %s\n", record.HostStudentName)
			}
			fmt.Printf("entry:     %s\n", record.RequestedEntryTime)
			if record.ActualEntryTime != "" {
				fmt.Printf("arrived:   %s\n", record.ActualEntryTime)
			}
			if record.ActualExitTime != "" {
				fmt.Printf("left:      %s\n", record.ActualExitTime)
			}
			if record.BadgeNumber != "" {
				fmt.Printf("badge:     %s\n", record.BadgeNumber)
			}
			if record.CompanyName != "" {
				fmt.Printf("company:   %s\n", record.CompanyName)
			}
			if record.VehicleNumber != "" {
				fmt.Printf("vehicle:   %s\n", record.VehicleNumber)
			}
			if record.IsBlacklisted {
				fmt.Printf("warning:   blacklisted\n")
			}
			if record.IsOverdue {
				fmt.Printf("warning:   overdue\n")
			}
			return nil
		},
	}
}
