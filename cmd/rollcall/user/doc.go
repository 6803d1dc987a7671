// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package user implements the "rollcall user" command group: staff and
// guardian account management for the current school.
package user
