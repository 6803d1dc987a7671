// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package student

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

type showParams struct {
	cli.JSONOutput
	cli.SessionFlags
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show one student record",
		Usage:   "rollcall student show <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			id, err := parseID(args, "student")
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
			record, err := session.Client.GetStudent(ctx, id)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(record); done {
				return jsonErr
			}

			fmt.Printf("%s (%s)\n", record.FullName, record.StudentID)
			fmt.Printf("class:     %s-%s\n", record.ClassName, record.Section)
			fmt.Printf("status:    %s\n", record.Status)
			if record.GuardianName != "" {
				fmt.Printf("guardian:  %s (%s)\n", record.GuardianName, record.GuardianPhone)
			}
			if record.Email != "" {
				fmt.Printf("email:     %s\n", record.Email)
			}
			if record.AdmissionDate != "" {
				fmt.Printf("admitted:  %s\n", record.AdmissionDate)
			}
			return nil
		},
	}
}

// parseID extracts the single positional numeric ID every show/update/
// delete subcommand takes.
func parseID(args []string, noun string) (int, error) {
	if len(args) < 1 {
		return 0, cli.Validation("%s ID is required", noun)
	}
	if len(args) > 1 {
		return 0, cli.Validation("unexpected argument: %s", args[1])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, cli.Validation("invalid %s ID %q", noun, args[0])
	}
	return id, nil
}
