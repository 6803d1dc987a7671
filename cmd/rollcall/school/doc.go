// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package school implements the "rollcall school" command group:
// viewing and editing the current tenant's school profile and its
// dashboard stats.
package school
