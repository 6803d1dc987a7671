// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type listParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Role   string `flag:"role" desc:"filter by role (admin, teacher, parent, security, student)"`
	Search string `flag:"search,s" desc:"match against name and email"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List user accounts",
		Usage:   "rollcall user list [flags]",
		Examples: []cli.Example{
			{
				Description: "List all security staff",
				Command:     "rollcall user list --role security",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			var role schema.Role
			if params.Role != "" {
				parsed, err := parseRole(params.Role)
				if err != nil {
					return err
				}
				role = parsed
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
			users, err := session.Client.ListUsers(ctx, api.UserFilter{
				Role:   role,
				Search: params.Search,
			})
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(users); done {
				return jsonErr
			}
			return printUserTable(users)
		},
	}
}

func teachersCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
		cli.SessionFlags
	}

	return &cli.Command{
		Name:    "teachers",
		Summary: "List teaching staff",
		Usage:   "rollcall user teachers [flags]",
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
			users, err := session.Client.ListTeachers(ctx)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(users); done {
				return jsonErr
			}
			return printUserTable(users)
		},
	}
}

func parentsCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
		cli.SessionFlags
	}

	return &cli.Command{
		Name:    "parents",
		Summary: "List guardian accounts",
		Usage:   "rollcall user parents [flags]",
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
			users, err := session.Client.ListParents(ctx)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(users); done {
				return jsonErr
			}
			return printUserTable(users)
		},
	}
}

func printUserTable(users []schema.User) error {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tSTATUS")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.FullName, u.Email, u.Role, u.Status)
	}
	return tw.Flush()
}

// parseRole accepts the lower-case spellings users type and returns the
// upper-case role the backend expects.
func parseRole(value string) (schema.Role, error) {
	role := schema.Role(strings.ToUpper(value))
	switch role {
	case schema.RoleAdmin, schema.RoleTeacher, schema.RoleParent, schema.RoleSecurity, schema.RoleStudent:
		return role, nil
	}
	return "", cli.Validation("unknown role %q: expected admin, teacher, parent, security, or student", value)
}
