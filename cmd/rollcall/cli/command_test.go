// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "rollcall",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "student",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "student"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"student"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "student" {
		t.Errorf("dispatched to %q, want %q", called, "student")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "rollcall",
		Subcommands: []*Command{
			{
				Name: "student",
				Subcommands: []*Command{
					{
						Name: "show",
						Run: func(_ context.Context, args []string, _ *slog.Logger) error {
							called = "student show"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"student", "show", "42"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "student show" {
		t.Errorf("dispatched to %q, want %q", called, "student show")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "42" {
		t.Errorf("args = %v, want [42]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	type params struct {
		Class  string `flag:"class" desc:"class name"`
		Status string `flag:"status" desc:"mark"`
	}
	var p params
	var positional []string

	command := &Command{
		Name:   "list",
		Params: func() any { return &p },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			positional = args
			return nil
		},
	}

	err := command.Execute(context.Background(), []string{"--class", "10", "--status", "absent", "extra"}, testLogger())
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if p.Class != "10" {
		t.Errorf("Class = %q, want %q", p.Class, "10")
	}
	if p.Status != "absent" {
		t.Errorf("Status = %q, want %q", p.Status, "absent")
	}
	if len(positional) != 1 || positional[0] != "extra" {
		t.Errorf("args = %v, want [extra]", positional)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	type params struct {
		Status string `flag:"status" desc:"mark"`
		Date   string `flag:"date" desc:"ISO date"`
	}
	var p params

	command := &Command{
		Name:   "list",
		Params: func() any { return &p },
		Run:    func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--staus", "absent"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --status") {
		t.Errorf("error = %q, want suggestion for '--status'", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	type params struct {
		Status string `flag:"status" desc:"mark"`
	}
	var p params

	command := &Command{
		Name:   "list",
		Params: func() any { return &p },
		Run:    func(_ context.Context, args []string, _ *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--zzzzzzzzz"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "rollcall",
		Subcommands: []*Command{
			{Name: "student"},
			{Name: "visitor"},
			{Name: "gatepass"},
		},
	}

	err := root.Execute(context.Background(), []string{"studnet"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"student\"") {
		t.Errorf("error = %q, want suggestion for 'student'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "rollcall",
		Subcommands: []*Command{
			{Name: "student"},
			{Name: "visitor"},
		},
	}

	err := root.Execute(context.Background(), []string{"zzzzzzz"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "rollcall",
				Summary: "School attendance from the terminal",
				Subcommands: []*Command{
					{Name: "student", Summary: "Manage the student roster"},
				},
			}

			if err := root.Execute(context.Background(), []string{helpArg}, testLogger()); err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "rollcall",
		Subcommands: []*Command{
			{Name: "student", Summary: "Manage the student roster"},
		},
	}

	err := root.Execute(context.Background(), []string{}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "rollcall",
		Description: "School attendance and gate operations from the terminal.",
		Subcommands: []*Command{
			{Name: "student", Summary: "Manage the student roster"},
			{Name: "attendance", Summary: "Mark and report daily attendance"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Authenticate to a school",
				Command:     "rollcall login asha@greenfield.example",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"School attendance and gate operations",
		"Commands:",
		"student",
		"Manage the student roster",
		"Examples:",
		"rollcall login asha@greenfield.example",
		"Run 'rollcall <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q:\n%s", want, output)
		}
	}
}
