// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type updateParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Email      string `flag:"email" desc:"login email"`
	FirstName  string `flag:"first-name" desc:"first name"`
	LastName   string `flag:"last-name" desc:"last name"`
	Phone      string `flag:"phone" desc:"contact phone"`
	Username   string `flag:"username" desc:"login username"`
	Role       string `flag:"role" desc:"admin, teacher, parent, security, or student"`
	EmployeeID string `flag:"employee-id" desc:"staff employee ID"`
	Department string `flag:"department" desc:"staff department"`
	Status     string `flag:"status" desc:"active, inactive, pending, or suspended"`
	Deactivate bool   `flag:"deactivate" desc:"disable the account"`
	Activate   bool   `flag:"activate" desc:"re-enable the account"`
}

func updateCommand() *cli.Command {
	var params updateParams

	return &cli.Command{
		Name:        "update",
		Summary:     "Update a user account",
		Description: "Only the fields named by flags change; everything else is left as is.",
		Usage:       "rollcall user update <id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Suspend an account",
				Command:     "rollcall user update 17 --status suspended --deactivate",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			if params.Activate && params.Deactivate {
				return cli.Validation("--activate and --deactivate are mutually exclusive")
			}

			var update schema.UserUpdate
			update.Email = optional(params.Email)
			update.Username = optional(params.Username)
			update.FirstName = optional(params.FirstName)
			update.LastName = optional(params.LastName)
			update.Phone = optional(params.Phone)
			update.EmployeeID = optional(params.EmployeeID)
			update.Department = optional(params.Department)
			if params.Role != "" {
				role, err := parseRole(params.Role)
				if err != nil {
					return err
				}
				update.Role = &role
			}
			if params.Status != "" {
				status, err := parseStatus(params.Status)
				if err != nil {
					return err
				}
				update.Status = &status
			}
			if params.Activate || params.Deactivate {
				active := params.Activate
				update.IsActive = &active
			}
			if update == (schema.UserUpdate{}) {
				return cli.Validation("nothing to update: pass at least one field flag")
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
			account, err := session.Client.UpdateUser(ctx, id, update)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(account); done {
				return jsonErr
			}
			fmt.Fprintf(os.Stderr, "Updated %s (%s)\n", account.FullName, account.Email)
			return nil
		},
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func parseStatus(value string) (schema.UserStatus, error) {
	status := schema.UserStatus(strings.ToUpper(value))
	switch status {
	case schema.UserActive, schema.UserInactive, schema.UserPending, schema.UserSuspended:
		return status, nil
	}
	return "", cli.Validation("unknown status %q: expected active, inactive, pending, or suspended", value)
}
