// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/claims"
	"github.com/rollcall-hq/rollcall/lib/tokenstore"
)

type whoamiParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Verify bool `flag:"verify" desc:"verify the session against the backend"`
}

type whoamiOutput struct {
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	ExpiresIn string `json:"expires_in,omitempty"`
	Status    string `json:"status,omitempty"`
}

func whoamiCommand() *cli.Command {
	var params whoamiParams

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the current admin session identity",
		Usage:   "rollcall admin whoami [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			session, err := cli.LoadAdminSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			snapshot := session.State.Snapshot()
			var output whoamiOutput
			if admin := snapshot.Admin.Admin; admin != nil {
				output.Email = admin.Email
				output.FullName = admin.FirstName + " " + admin.LastName
			}

			if token, ok, _ := session.Tokens.Get(tokenstore.ScopeAdmin, tokenstore.KeyToken); ok {
				if decoded, err := claims.Decode(token); err == nil {
					if remaining := decoded.ExpiresIn(time.Now()); remaining > 0 {
						output.ExpiresIn = remaining.Truncate(time.Second).String()
					} else if decoded.ExpiresAt != nil {
						output.Status = "expired"
					}
					if output.Email == "" {
						output.Email = decoded.Email
					}
				}
			}

			if params.Verify {
				verifyCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				defer cancel()
				if err := session.Boot.ConfirmAdmin(verifyCtx, session.Client); err != nil {
					output.Status = "invalid"
				} else {
					output.Status = "valid"
					snapshot = session.State.Snapshot()
					if admin := snapshot.Admin.Admin; admin != nil {
						output.Email = admin.Email
						output.FullName = admin.FirstName + " " + admin.LastName
					}
				}
			}

			if done, jsonErr := params.EmitJSON(output); done {
				return jsonErr
			}

			if output.FullName != "" {
				fmt.Printf("%s <%s>\n", output.FullName, output.Email)
			} else {
				fmt.Printf("<%s>\n", output.Email)
			}
			fmt.Printf("surface: platform admin\n")
			if output.ExpiresIn != "" {
				fmt.Printf("token:   expires in %s\n", output.ExpiresIn)
			}
			if output.Status != "" {
				fmt.Printf("status:  %s\n", output.Status)
			}

			if output.Status == "invalid" {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
