// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// "Bearer " prefix but no token after it.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoSubjectInContext is returned when a stage that needs an
	// authenticated subject runs without the auth middleware before it.
	ErrNoSubjectInContext = errors.New("no authenticated subject in request context")

	// ErrInvalidJSON is returned when the request body is not a single JSON
	// object matching the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidResourceID is returned when a path id is not a positive
	// integer.
	ErrInvalidResourceID = errors.New("invalid resource id")

	// ErrTooManyRequests is returned when a client exceeds the sign-in rate.
	ErrTooManyRequests = errors.New("too many requests")
)
