// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the public message strings of the go-blog API.
//
// The Msg* constants are written into JSON error bodies by the HTTP layer.
// Keeping them in one place keeps the wording identical across routes, which
// matters for the authorization failures: every rejected token must look
// the same to the client.
package app

const (
	// MsgUnauthorized answers every missing, malformed, forged or expired
	// bearer token.
	MsgUnauthorized = "unauthorized"

	// MsgForbidden answers a request on a resource owned by someone else.
	// The owner is never named.
	MsgForbidden = "forbidden"

	// MsgValidationFailed heads a 400 body that lists the failed fields.
	MsgValidationFailed = "validation failed"

	// MsgNotFound answers an unregistered method on a known path.
	MsgNotFound = "Not Found"

	// MsgInternalServerError answers any unexpected failure. The cause is
	// logged, never sent.
	MsgInternalServerError = "Internal Server Error"
)
