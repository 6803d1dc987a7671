// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package security implements the "rollcall security" command group:
// the gate-side tools used by security staff (dashboard, person search,
// RFID verification, gate marking, and the recent activity feed).
package security
