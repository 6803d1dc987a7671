// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rollcall-hq/rollcall/cmd/rollcall/cli"
	"github.com/rollcall-hq/rollcall/cmd/rollcall/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like whoami --verify)
		// return an ExitError with the desired exit code. Don't print a
		// redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := cli.NewCommandLogger()
	return commands.Root().Execute(context.Background(), os.Args[1:], logger)
}
