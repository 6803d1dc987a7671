// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package console is the interactive terminal dashboard. It is a
// bubbletea program over the shared state store: key presses start
// API thunks, thunks dispatch lifecycle actions, and the view renders
// whatever snapshot the store holds. Security guards land on the gate
// tab; everyone else lands on the overview.
package console
