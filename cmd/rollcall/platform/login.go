// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/state"
	"github.com/rollcall-hq/rollcall/lib/tokenstore"
)

type loginParams struct {
	cli.SessionFlags
	PasswordFile string `flag:"password-file" desc:"path to file containing the password, or - to prompt interactively (default: prompt)"`
}

func loginCommand() *cli.Command {
	var params loginParams

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate as a platform admin",
		Description: `Log in to the platform admin surface and save the session locally.

The admin credentials are sealed into their own scope of the credential
store. A school session saved by "rollcall login" is untouched, and an
expired admin token never logs the school user out.`,
		Usage: "rollcall admin login <email> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "rollcall admin login root@rollcall.example",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("email is required\n\nUsage: rollcall admin login <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			session, err := cli.LoadAdminSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}

			password, err := cli.ReadPassword("Password", params.PasswordFile)
			if err != nil {
				return err
			}
			defer password.Close()

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			session.State.Dispatch(state.AdminLoginPending{})
			response, err := session.Client.Login(ctx, email, password)
			if err != nil {
				session.State.Dispatch(state.AdminLoginRejected{Message: api.Message(err)})
				return cli.FromAPI(err)
			}

			session.Client.SetToken(response.AccessToken)
			session.State.Dispatch(state.AdminLoginFulfilled{Token: response.AccessToken, Admin: response.Admin})

			cachedAdmin, err := json.Marshal(response.Admin)
			if err != nil {
				return cli.Internal("encoding profile: %w", err)
			}
			err = session.Tokens.SetMany(tokenstore.ScopeAdmin, map[string]string{
				tokenstore.KeyToken: response.AccessToken,
				tokenstore.KeyUser:  string(cachedAdmin),
			})
			if err != nil {
				return cli.Internal("saving session: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as platform admin %s %s\n",
				response.Admin.FirstName, response.Admin.LastName)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	var params struct {
		cli.SessionFlags
	}

	return &cli.Command{
		Name:    "logout",
		Summary: "Discard the saved platform admin session",
		Usage:   "rollcall admin logout",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			session, err := cli.LoadAdminSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if !session.Restored {
				fmt.Fprintln(os.Stderr, "Not logged in.")
				return nil
			}
			session.Boot.InvalidateAdmin(session.Client)
			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}
