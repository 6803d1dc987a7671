// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/lib/schema"
)

type bulkParams struct {
	cli.SessionFlags
	File string `flag:"file,f" desc:"JSON file of records, or - for stdin"`
	Date string `flag:"date,d" desc:"ISO date applied to records that omit one"`
}

func bulkCommand() *cli.Command {
	var params bulkParams

	return &cli.Command{
		Name:    "bulk",
		Summary: "Mark a whole class in one request",
		Description: `Reads a JSON array of records ({"student_id": ..., "status": ...,
"notes": ...}) and submits them as a single atomic request. The backend
applies the batch all-or-nothing, so a typo in one record rejects the
whole file rather than leaving the class half-marked.`,
		Usage: "rollcall attendance bulk --file <records.json> [flags]",
		Examples: []cli.Example{
			{
				Description: "Submit a class register exported by a grading tool",
				Command:     "rollcall attendance bulk --file 10a-register.json --date 2026-03-02",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.File == "" {
				return cli.Validation("--file is required")
			}

			records, err := readRecords(params.File)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return cli.Validation("%s contains no records", params.File)
			}
			for i := range records {
				if records[i].StudentID <= 0 {
					return cli.Validation("record %d: missing or invalid student_id", i)
				}
				if !schema.ValidAttendanceStatus(records[i].Status) {
					return cli.Validation("record %d: unknown status %q", i, records[i].Status)
				}
				if records[i].Date == "" {
					records[i].Date = params.Date
				}
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
			if err := session.Client.BulkMarkAttendance(ctx, records); err != nil {
				return cli.FromAPI(err)
			}

			fmt.Fprintf(os.Stderr, "Marked %d students\n", len(records))
			return nil
		},
	}
}

func readRecords(path string) ([]schema.AttendanceCreate, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, cli.Validation("%v", err)
		}
		defer file.Close()
		reader = file
	}

	var records []schema.AttendanceCreate
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return nil, cli.Validation("parsing %s: %v", path, err)
	}
	return records, nil
}
