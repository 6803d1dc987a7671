// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package user

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
		Summary: "Show one user account",
		Usage:   "rollcall user show <id> [flags]",
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
			account, err := session.Client.GetUser(ctx, id)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(account); done {
				return jsonErr
			}

			fmt.Printf("%s <%s>\n", account.FullName, account.Email)
			fmt.Printf("role:      %s\n", account.Role)
			fmt.Printf("status:    %s\n", account.Status)
			if account.Phone != "" {
				fmt.Printf("phone:     %s\n", account.Phone)
			}
			if account.EmployeeID != "" {
				fmt.Printf("employee:  %s\n", account.EmployeeID)
			}
			if account.Department != "" {
				fmt.Printf("dept:      %s\n", account.Department)
			}
			fmt.Printf("verified:  %t\n", account.IsVerified)
			return nil
		},
	}
}
