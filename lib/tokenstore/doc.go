// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package tokenstore persists the console's bearer credentials between
// invocations. It is the only component that touches credential
// storage; everything else goes through Set/Get/Clear.
//
// Two independent scopes exist: the tenant-user session and the
// platform-admin session. Each scope is one sealed file, so clearing
// one scope can never disturb the other. Within a scope the store is a
// flat key/value map; the keys in use are the access token, the cached
// user record (JSON), and, for the tenant scope, the resolved tenant
// identifier.
//
// Files live under the rollcall config directory (ROLLCALL_STATE_DIR,
// else $XDG_CONFIG_HOME/rollcall, else ~/.config/rollcall) with mode
// 0600 and are encrypted at rest with age. The X25519 identity is
// generated on first use and stored alongside, also 0600. Sealing does
// not protect against an attacker who owns the account (the identity
// sits next to the data), but it keeps tokens out of greps, backups,
// and accidental pastes, the same posture as the platform's credential
// bundles.
//
// No expiry is enforced here. A stale token is discovered the way the
// spec demands: by a 401 from the backend.
package tokenstore
