// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// passwdParams holds the parameters for the passwd command.
type passwdParams struct {
	SessionFlags
	CurrentFile string `flag:"current-file" desc:"path to file containing the current password (default: prompt)"`
	NewFile     string `flag:"new-file" desc:"path to file containing the new password (default: prompt)"`
}

// PasswdCommand returns the "passwd" command for changing the
// authenticated user's password.
func PasswdCommand() *Command {
	var params passwdParams

	return &Command{
		Name:    "passwd",
		Summary: "Change your password",
		Usage:   "rollcall passwd [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return Validation("unexpected argument: %s", args[0])
			}

			session, err := LoadSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			current, err := ReadPassword("Current password", params.CurrentFile)
			if err != nil {
				return err
			}
			defer current.Close()

			next, err := ReadPassword("New password", params.NewFile)
			if err != nil {
				return err
			}
			defer next.Close()

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			if err := session.Client.ChangePassword(ctx, current, next); err != nil {
				return FromAPI(err)
			}

			fmt.Fprintln(os.Stderr, "Password changed.")
			return nil
		},
	}
}
