// Package config loads, merges and validates the go-blog server configuration.
//
// Configuration is assembled from these sources; for every field the first
// source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults (24h tokens, localhost:8080, ...)
//
// The entry point is [GetStructuredConfig].
package config
