// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the wire types exchanged with the Rollcall
// attendance platform's REST API. Every type mirrors a JSON request or
// response body; the console never computes derived business fields
// beyond display formatting, so these are plain data carriers.
//
// The platform runs two logical API roots: the tenant API (school
// users, students, attendance, gate passes, visitors) and the platform
// admin API under the /super-admin prefix. Types for both live here so
// that client code, state slices, and the console share one vocabulary.
package schema
