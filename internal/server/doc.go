// Package server runs the HTTP transport of the go-blog server.
//
// It owns the listener lifecycle: startup, stop-signal handling and graceful
// shutdown, after which the storage connections are released.
package server
