package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an access credential issued to a subject.
//
// It embeds [jwt.Token] for signing and [jwt.RegisteredClaims] for the
// standard claim set; only "sub", "iat", "exp" and "iss" are populated.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// SubjectID is the parsed "sub" claim.
	SubjectID int64 `json:"-"`
}

// GetSubjectID parses the "sub" claim as a base-10 int64.
func (t *Token) GetSubjectID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting subject from token: %w", err)
	}

	subjectID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject %q to int64: %w", subject, err)
	}

	return subjectID, nil
}

// ExpiresAtTime returns the "exp" claim or the zero time when it is absent.
func (t *Token) ExpiresAtTime() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
