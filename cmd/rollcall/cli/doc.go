// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is rollcall's command framework: the command tree,
// struct-tag flag binding, categorized errors, and the session glue
// that wires configuration, the credential store, and the API clients
// into each command's Run function.
package cli
