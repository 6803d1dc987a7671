// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package state holds the console's in-memory application state and
// the reducer that evolves it.
//
// The model is deliberately rigid: all mutation flows through
// [Store.Dispatch], the reducer is a pure function from (state, action)
// to state, and subscribers observe immutable snapshots. Async
// operations follow a three-phase lifecycle: a pending action marks
// the slice loading while keeping stale data visible, a fulfilled
// action replaces the data and clears any prior error, and a rejected
// action records the failure message while again keeping whatever data
// was already on screen.
package state
