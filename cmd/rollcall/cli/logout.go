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

// logoutParams holds the parameters for the logout command.
type logoutParams struct {
	SessionFlags
}

// LogoutCommand returns the "logout" command. The backend is notified
// best-effort; local credential destruction happens regardless, so
// logging out works offline.
func LogoutCommand() *Command {
	var params logoutParams

	return &Command{
		Name:    "logout",
		Summary: "End the current session",
		Description: `Log out of the current school session.

The local credentials are always destroyed. The backend is notified so
it can end the server-side session, but an unreachable backend does not
keep you logged in locally.`,
		Usage: "rollcall logout [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return Validation("unexpected argument: %s", args[0])
			}

			session, err := LoadSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if !session.Restored {
				fmt.Fprintln(os.Stderr, "Not logged in.")
				return nil
			}

			// Best-effort server-side teardown with a short leash.
			notifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := session.Client.NotifyLogout(notifyCtx); err != nil {
				logger.Debug("logout notification failed", "error", err)
			}

			session.Boot.Invalidate(session.Client)
			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}
