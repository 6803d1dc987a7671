// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type createParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Email        string `flag:"email" desc:"login email"`
	FirstName    string `flag:"first-name" desc:"first name"`
	LastName     string `flag:"last-name" desc:"last name"`
	Role         string `flag:"role" desc:"admin, teacher, parent, security, or student"`
	Phone        string `flag:"phone" desc:"contact phone"`
	Username     string `flag:"username" desc:"optional login username"`
	EmployeeID   string `flag:"employee-id" desc:"staff employee ID"`
	Department   string `flag:"department" desc:"staff department"`
	HireDate     string `flag:"hire-date" desc:"hire date (YYYY-MM-DD)"`
	PasswordFile string `flag:"password-file" desc:"read the initial password from this file instead of prompting"`
}

func createCommand() *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create a user account",
		Usage:   "rollcall user create --email <email> --first-name <name> --last-name <name> --role <role> [flags]",
		Examples: []cli.Example{
			{
				Description: "Create a teacher account, prompting for the initial password",
				Command:     "rollcall user create --email t.nair@greenfield.example --first-name Tara --last-name Nair --role teacher",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Email == "" {
				return cli.Validation("--email is required")
			}
			if params.FirstName == "" || params.LastName == "" {
				return cli.Validation("--first-name and --last-name are required")
			}
			if params.Role == "" {
				return cli.Validation("--role is required")
			}
			role, err := parseRole(params.Role)
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

			password, err := cli.ReadPassword("Initial password", params.PasswordFile)
			if err != nil {
				return err
			}
			defer password.Close()

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			account, err := session.Client.CreateUser(ctx, schema.UserCreate{
				Email:      params.Email,
				Username:   params.Username,
				FirstName:  params.FirstName,
				LastName:   params.LastName,
				Phone:      params.Phone,
				Role:       role,
				EmployeeID: params.EmployeeID,
				Department: params.Department,
				HireDate:   params.HireDate,
				Password:   password.String(),
			})
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(account); done {
				return jsonErr
			}
			fmt.Fprintf(os.Stderr, "Created %s account for %s with ID %d\n", account.Role, account.Email, account.ID)
			return nil
		},
	}
}
