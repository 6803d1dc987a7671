// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package attendance implements the "rollcall attendance" command
// group: daily marking (single and whole-class bulk), listings, and
// the stats and by-class reports.
package attendance
