// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package gatepass implements the "rollcall gatepass" command group:
// the student exit authorization workflow from request through
// approval or denial.
package gatepass
