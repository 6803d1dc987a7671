// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/secret"
	"github.com/rollcall-hq/rollcall/lib/state"
	"github.com/rollcall-hq/rollcall/lib/tokenstore"
)

// loginParams holds the parameters for the login command.
type loginParams struct {
	SessionFlags
	PasswordFile string `flag:"password-file" desc:"path to file containing the password, or - to prompt interactively (default: prompt)"`
}

// LoginCommand returns the "login" command for authenticating a school
// user. The returned token and profile are sealed into the credential
// store; subsequent commands and the console restore them
// transparently.
func LoginCommand() *Command {
	var params loginParams

	return &Command{
		Name:    "login",
		Summary: "Authenticate as a school user",
		Description: `Log in to a school and save the session locally.

After login, commands like "rollcall student list" and the interactive
console use the saved session transparently. The credentials are sealed
into ` + "`" + `~/.config/rollcall` + "`" + ` (or $ROLLCALL_STATE_DIR) with owner-only
permissions.

The password can be provided via --password-file (a path to a file
containing the password) or prompted interactively if --password-file
is "-" or omitted.`,
		Usage: "rollcall login <email> [flags]",
		Examples: []Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "rollcall login asha@greenfield.example",
			},
			{
				Description: "Log in to a specific school",
				Command:     "rollcall login asha@greenfield.example --tenant greenfield",
			},
			{
				Description: "Log in with password from file",
				Command:     "rollcall login asha@greenfield.example --password-file /path/to/password",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return Validation("email is required\n\nUsage: rollcall login <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return Validation("unexpected argument: %s", args[1])
			}

			session, err := LoadSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}

			password, err := ReadPassword("Password", params.PasswordFile)
			if err != nil {
				return err
			}
			defer password.Close()

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			session.State.Dispatch(state.LoginPending{})
			response, err := session.Client.Login(ctx, email, password)
			if err != nil {
				session.State.Dispatch(state.LoginRejected{Message: api.Message(err)})
				return FromAPI(err)
			}

			session.Client.SetToken(response.AccessToken)
			session.State.Dispatch(state.LoginFulfilled{Token: response.AccessToken, User: response.User})

			cachedUser, err := json.Marshal(response.User)
			if err != nil {
				return Internal("encoding profile: %w", err)
			}
			err = session.Tokens.SetMany(tokenstore.ScopeTenant, map[string]string{
				tokenstore.KeyToken: response.AccessToken,
				tokenstore.KeyUser:  string(cachedUser),
			})
			if err != nil {
				return Internal("saving session: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s (%s) on %s\n",
				response.User.FullName, strings.ToLower(string(response.User.Role)), session.TenantID)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", tokenstore.Dir())
			return nil
		},
	}
}

// ReadPassword reads a password for login-style commands. If
// passwordFile is empty or "-", prompts interactively on the terminal
// with echo disabled; otherwise reads the file.
func ReadPassword(prompt, passwordFile string) (*secret.Buffer, error) {
	if passwordFile != "" && passwordFile != "-" {
		buffer, err := secret.ReadFromPath(passwordFile)
		if err != nil {
			return nil, Internal("reading %s: %w", passwordFile, err)
		}
		return buffer, nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return nil, Validation("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, prompt+": ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, Internal("reading password: %w", err)
	}

	buffer, err := secret.NewFromBytes(passwordBytes)
	if err != nil {
		secret.Zero(passwordBytes)
		return nil, Internal("%v", err)
	}
	return buffer, nil
}
