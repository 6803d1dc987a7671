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
)

type deleteParams struct {
	cli.SessionFlags
}

func deleteCommand() *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Remove a user account",
		Usage:   "rollcall user delete <id>",
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
			if err := session.Client.DeleteUser(ctx, id); err != nil {
				return cli.FromAPI(err)
			}

			fmt.Fprintf(os.Stderr, "Deleted user %d\n", id)
			return nil
		},
	}
}
