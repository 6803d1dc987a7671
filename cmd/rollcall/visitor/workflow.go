// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package visitor

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
		Summary: "Approve a pending visitor",
		Usage:   "rollcall visitor approve <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return decide(ctx, args, logger, &params, "Approved", (*api.Client).ApproveVisitor)
		},
	}
}

func denyCommand() *cli.Command {
	var params decideParams

	return &cli.Command{
		Name:    "deny",
		Summary: "Deny a pending visitor",
		Usage:   "rollcall visitor deny <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return decide(ctx, args, logger, &params, "Denied", (*api.Client).DenyVisitor)
		},
	}
}

func decide(ctx context.Context, args []string, logger *slog.Logger, params *decideParams, verb string, call func(*api.Client, context.Context, int, string) (*schema.Visitor, error)) error {
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
	record, err := call(session.Client, ctx, id, params.Notes)
	if err != nil {
		return cli.FromAPI(err)
	}

	if done, jsonErr := params.EmitJSON(record); done {
		return jsonErr
	}
	fmt.Fprintf(os.Stderr, "%s visitor %d (%s)\n", verb, record.ID, record.FullName)
	return nil
}

type gateParams struct {
	cli.JSONOutput
	cli.SessionFlags
}

func checkInCommand() *cli.Command {
	var params gateParams

	return &cli.Command{
		Name:    "check-in",
		Summary: "Check an approved visitor in at the gate",
		Usage:   "rollcall visitor check-in <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return gateMove(ctx, args, logger, &params, "Checked in", (*api.Client).CheckInVisitor)
		},
	}
}

func checkOutCommand() *cli.Command {
	var params gateParams

	return &cli.Command{
		Name:    "check-out",
		Summary: "Check a visitor out at the gate",
		Usage:   "rollcall visitor check-out <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return gateMove(ctx, args, logger, &params, "Checked out", (*api.Client).CheckOutVisitor)
		},
	}
}

func gateMove(ctx context.Context, args []string, logger *slog.Logger, params *gateParams, verb string, call func(*api.Client, context.Context, int) (*schema.Visitor, error)) error {
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
	record, err := call(session.Client, ctx, id)
	if err != nil {
		return cli.FromAPI(err)
	}

	if done, jsonErr := params.EmitJSON(record); done {
		return jsonErr
	}
	if record.BadgeNumber != "" {
		fmt.Fprintf(os.Stderr, "%s %s (badge %s)\n", verb, record.FullName, record.BadgeNumber)
	} else {
		fmt.Fprintf(os.Stderr, "%s %s\n", verb, record.FullName)
	}
	return nil
}
