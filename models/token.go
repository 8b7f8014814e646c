package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the auth service.
//
// It embeds [jwt.RegisteredClaims] so it can be used directly as the claims
// value when parsing.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Session converts the validated token into request session data.
func (t *Token) Session() Session {
	session := Session{
		UserID:  t.UserID,
		TokenID: t.ID,
	}
	if t.ExpiresAt != nil {
		session.ExpiresAt = t.ExpiresAt.Time
	}
	return session
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
