// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds the visual building blocks shared by rollcall's
// interactive console: the color theme and the fuzzy matcher behind
// the list filter.
package tui
