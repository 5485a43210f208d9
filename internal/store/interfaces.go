// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CoSplitz

// Package store provides the client-side persistence layer for session
// records.
//
// The session service writes its snapshot under a fixed record key and reads
// it back on startup. Three backends are available: a JSON file store, an
// SQLite store, and a no-op store for ephemeral sessions. All backends treat
// persistence failures as non-fatal: errors are logged and swallowed so that
// a broken disk never blocks an authentication flow.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore is a small key-value contract for persisted session records.
type SessionStore interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) ([]byte, bool)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte)

	// Remove deletes the record stored under key, if any.
	Remove(key string)
}
