// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package visitor implements the "rollcall visitor" command group: the
// visitor lifecycle from registration or pre-registration through
// approval, check-in, and check-out.
package visitor
