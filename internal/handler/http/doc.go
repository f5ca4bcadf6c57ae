// Package http implements the HTTP transport layer of the go-blog server.
//
// It wires the chi router, the request handlers and the middleware chain of
// the REST API. Every protected route runs the same staged pipeline before
// its handler: identity resolution from the bearer token, body decoding and
// validation, and for routes that modify an owned resource the ownership
// check. Each stage either writes a terminal response or hands an enriched
// request context to the next one.
package http
