// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package platform implements the "rollcall admin" command group: the
// platform super-admin surface for cross-school oversight. Its
// credentials live in a separate scope from the school session; logging
// in or out on one surface never touches the other.
package platform
