// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Name     string        `flag:"name" desc:"the name"`
		Verbose  bool          `flag:"verbose,v" desc:"enable verbose output"`
		Count    int           `flag:"count" desc:"number of items"`
		Offset   int64         `flag:"offset" desc:"byte offset"`
		Rate     float64       `flag:"rate" desc:"sampling rate"`
		Timeout  time.Duration `flag:"timeout" desc:"request timeout"`
		Tags     []string      `flag:"tags" desc:"tag list"`
		Untagged string        // no flag tag, should be skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--name", "asha",
		"-v",
		"--count", "42",
		"--offset", "1099511627776",
		"--rate", "0.95",
		"--timeout", "30s",
		"--tags", "a,b,c",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Name != "asha" {
		t.Errorf("Name = %q, want %q", p.Name, "asha")
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Count != 42 {
		t.Errorf("Count = %d, want 42", p.Count)
	}
	if p.Offset != 1099511627776 {
		t.Errorf("Offset = %d, want 1099511627776", p.Offset)
	}
	if p.Rate != 0.95 {
		t.Errorf("Rate = %f, want 0.95", p.Rate)
	}
	if p.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", p.Timeout)
	}
	if len(p.Tags) != 3 || p.Tags[0] != "a" || p.Tags[1] != "b" || p.Tags[2] != "c" {
		t.Errorf("Tags = %v, want [a b c]", p.Tags)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty (should be skipped)", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Host  string `flag:"host" desc:"server host" default:"localhost"`
		Limit int    `flag:"limit" desc:"row limit" default:"20"`
		Debug bool   `flag:"debug" desc:"debug mode" default:"true"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Host != "localhost" {
		t.Errorf("Host = %q, want %q", p.Host, "localhost")
	}
	if p.Limit != 20 {
		t.Errorf("Limit = %d, want 20", p.Limit)
	}
	if !p.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestBindFlags_EmbeddedStructs(t *testing.T) {
	type params struct {
		JSONOutput
		SessionFlags
		Search string `flag:"search,s" desc:"search term"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{"--json", "--tenant", "greenfield", "-s", "rao"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.Tenant != "greenfield" {
		t.Errorf("Tenant = %q, want %q", p.Tenant, "greenfield")
	}
	if p.Search != "rao" {
		t.Errorf("Search = %q, want %q", p.Search, "rao")
	}
}

func TestBindFlags_RejectsNonPointer(t *testing.T) {
	type params struct {
		Name string `flag:"name"`
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(params{}, flagSet)
	if err == nil {
		t.Fatal("BindFlags(non-pointer) = nil, want error")
	}
	if !strings.Contains(err.Error(), "pointer to a struct") {
		t.Errorf("error = %q, want mention of pointer requirement", err.Error())
	}
}

func TestBindFlags_UnsupportedType(t *testing.T) {
	type params struct {
		Weird map[string]int `flag:"weird"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("BindFlags(map field) = nil, want error")
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error = %q, want 'unsupported type'", err.Error())
	}
}
