// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package security

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
)

type searchParams struct {
	cli.JSONOutput
	cli.SessionFlags
}

func searchCommand() *cli.Command {
	var params searchParams

	return &cli.Command{
		Name:    "search",
		Summary: "Search students and staff by name or ID",
		Usage:   "rollcall security search <term> [flags]",
		Examples: []cli.Example{
			{
				Description: "Find everyone named Rao at the gate",
				Command:     "rollcall security search rao",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) == 0 {
				return cli.Validation("search term is required")
			}
			term := strings.Join(args, " ")

			session, err := cli.LoadSession(params.SessionFlags, logger)
			if err != nil {
				return err
			}
			if err := session.RequireAuth(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			matches, err := session.Client.SearchPeople(ctx, term)
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(matches); done {
				return jsonErr
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tID NUMBER\tCLASS")
			for _, m := range matches {
				idNumber := m.IDNumber
				if idNumber == "" {
					idNumber = m.EmployeeID
				}
				fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\n",
					m.ID, m.FirstName, m.LastName, m.Type, idNumber, m.ClassName)
			}
			return tw.Flush()
		},
	}
}

func verifyCommand() *cli.Command {
	var params searchParams

	return &cli.Command{
		Name:    "verify-rfid",
		Summary: "Look up the holder of an RFID card",
		Usage:   "rollcall security verify-rfid <card-id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("card ID is required")
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
			match, err := session.Client.VerifyRFID(ctx, args[0])
			if err != nil {
				return cli.FromAPI(err)
			}

			if done, jsonErr := params.EmitJSON(match); done {
				return jsonErr
			}

			fmt.Printf("%s %s (%s)\n", match.FirstName, match.LastName, match.Type)
			if match.ClassName != "" {
				fmt.Printf("class:  %s\n", match.ClassName)
			}
			if match.IDNumber != "" {
				fmt.Printf("id:     %s\n", match.IDNumber)
			}
			if match.EmployeeID != "" {
				fmt.Printf("id:     %s\n", match.EmployeeID)
			}
			return nil
		},
	}
}
