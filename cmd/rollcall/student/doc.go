// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package student implements the "rollcall student" command group:
// roster listing, enrollment, and record maintenance.
package student
