// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package api provides typed HTTP clients for the Rollcall attendance
// platform's REST API: [Client] for the tenant API root and
// [AdminClient] for the platform-admin root. Each client is the single
// point of outbound request construction for its scope.
//
// Every request carries Authorization: Bearer when a token is set, an
// X-Tenant-ID header when the tenant identifier is known, and a
// client-generated X-Request-ID for correlation. A 401 response fires
// the scope's OnUnauthorized hook (credential purge and, in the
// console, navigation to that scope's login view) before the error is
// returned; the other scope is never touched.
//
// Failures surface as *[Error] carrying the server's "detail" message
// when one is present, else the generic fallback from [Message].
package api
