// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package gatepass

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
		Summary: "Show one gate pass",
		Usage:   "rollcall gatepass show <id> [flags]",
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
			pass, err := session.Client.GetGatePass(ctx, id)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(pass); done {
				return jsonErr
			}

			fmt.Printf("pass %d: %s for %s (%s)\n", pass.ID, pass.Type, pass.Student.FullName, pass.Student.ClassName)
			fmt.Printf("reason:     %s\n", pass.Reason)
			fmt.Printf("requested:  %s\n", pass.RequestedTime)
			fmt.Printf("status:     %s\n", pass.Status)
			fmt.Printf("guardian:   approved=%t\n", pass.GuardianApproval)
			fmt.Printf("admin:      approved=%t\n", pass.AdminApproval)
			if pass.ApprovedBy != "" {
				fmt.Printf("decided by: %s at %s\n", pass.ApprovedBy, pass.ApprovedTime)
			}
			if pass.ExitTime != "" {
				fmt.Printf("exit:       %s\n", pass.ExitTime)
			}
			if pass.ReturnTime != "" {
				fmt.Printf("return:     %s\n", pass.ReturnTime)
			}
			if pass.Notes != "" {
				fmt.Printf("notes:      %s\n", pass.Notes)
			}
			return nil
		},
	}
}
