// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated identity attached to a request after its
// bearer token has been validated.
type Session struct {
	// UserID is the owner of the token.
	UserID int64

	// TokenID is the "jti" claim of the token, used for request tracing.
	TokenID string

	// ExpiresAt is the expiry of the token the session was built from.
	ExpiresAt time.Time
}
