package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong username or password")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is matched by every token verification
	// failure. Callers outside the service only need this one.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenIsExpired          = fmt.Errorf("%w: expired", ErrTokenIsExpiredOrInvalid)
	ErrTokenInvalidSignature   = fmt.Errorf("%w: invalid signature", ErrTokenIsExpiredOrInvalid)
	ErrTokenMalformed          = fmt.Errorf("%w: malformed", ErrTokenIsExpiredOrInvalid)

	ErrResourceNotFound = errors.New("resource not found")
	ErrForbidden        = errors.New("forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
