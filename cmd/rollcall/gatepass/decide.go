// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package gatepass

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type decideParams struct {
	cli.JSONOutput
	cli.SessionFlags
	Notes string `flag:"notes" desc:"note recorded with the decision"`
}

func approveCommand() *cli.Command {
	var params decideParams

	return &cli.Command{
		Name:    "approve",
		Summary: "Approve a pending gate pass",
		Usage:   "rollcall gatepass approve <id> [flags]",
		Params:  func() any { return &params },
		Run:     decideRun(&params, "Approved", (*api.Client).ApproveGatePass),
	}
}

func denyCommand() *cli.Command {
	var params decideParams

	return &cli.Command{
		Name:    "deny",
		Summary: "Deny a pending gate pass",
		Usage:   "rollcall gatepass deny <id> [flags]",
		Params:  func() any { return &params },
		Run:     decideRun(&params, "Denied", (*api.Client).DenyGatePass),
	}
}

func decideRun(params *decideParams, verb string, decide func(*api.Client, context.Context, int, string) (*schema.GatePass, error)) func(context.Context, []string, *slog.Logger) error {
	return func(ctx context.Context, args []string, logger *slog.Logger) error {
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
		pass, err := decide(session.Client, ctx, id, params.Notes)
		if err != nil {
			return cli.FromAPI(err)
		}

		if done, jsonErr := params.EmitJSON(pass); done {
			return jsonErr
		}
		fmt.Fprintf(os.Stderr, "%s gate pass %d for %s\n", verb, pass.ID, pass.Student.FullName)
		return nil
	}
}
