// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rollcall-hq/rollcall/lib/claims"
	"github.com/rollcall-hq/rollcall/lib/tokenstore"
)

// whoamiParams holds the parameters for the whoami command.
type whoamiParams struct {
	JSONOutput
	SessionFlags
	Verify bool `flag:"verify" desc:"verify the session against the backend"`
}

// whoamiOutput is the JSON output for the whoami command.
type whoamiOutput struct {
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	Tenant    string `json:"tenant"`
	ExpiresIn string `json:"expires_in,omitempty"`
	Status    string `json:"status,omitempty"`
}

// WhoAmICommand returns the "whoami" command for displaying the
// current session identity. Without --verify only local state is read:
// the cached profile plus the token's own claims. With --verify the
// token is presented to the backend, which is the same check the
// session bootstrap performs.
func WhoAmICommand() *Command {
	var params whoamiParams

	return &Command{
		Name:    "whoami",
		Summary: "Show the current session identity",
		Usage:   "rollcall whoami [flags]",
		Examples: []Example{
			{
				Description: "Show the cached identity without network access",
				Command:     "rollcall whoami",
			},
			{
				Description: "Verify the session is still accepted",
				Command:     "rollcall whoami --verify",
			},
		},
		Params: func() any { return &params },
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

			snapshot := session.State.Snapshot()
			output := whoamiOutput{Tenant: session.TenantID}
			if user := snapshot.Auth.User; user != nil {
				output.Email = user.Email
				output.FullName = user.FullName
				output.Role = strings.ToLower(string(user.Role))
			}

			// The token itself knows when it expires; the cached
			// profile does not.
			if token, ok, _ := session.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyToken); ok {
				if decoded, err := claims.Decode(token); err == nil {
					if remaining := decoded.ExpiresIn(time.Now()); remaining > 0 {
						output.ExpiresIn = remaining.Truncate(time.Second).String()
					} else if decoded.ExpiresAt != nil {
						output.Status = "expired"
					}
					if output.Role == "" {
						output.Role = strings.ToLower(decoded.Role)
					}
					if output.Email == "" {
						output.Email = decoded.Email
					}
				}
			}

			if params.Verify {
				verifyCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				defer cancel()
				if err := session.Boot.Confirm(verifyCtx, session.Client); err != nil {
					output.Status = "invalid"
				} else {
					output.Status = "valid"
					snapshot = session.State.Snapshot()
					if user := snapshot.Auth.User; user != nil {
						output.Email = user.Email
						output.FullName = user.FullName
						output.Role = strings.ToLower(string(user.Role))
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
			fmt.Printf("role:   %s\n", output.Role)
			fmt.Printf("tenant: %s\n", output.Tenant)
			if output.ExpiresIn != "" {
				fmt.Printf("token:  expires in %s\n", output.ExpiresIn)
			}
			if output.Status != "" {
				fmt.Printf("status: %s\n", output.Status)
			}

			if output.Status == "invalid" {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}
