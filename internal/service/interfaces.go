// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CoSplitz

// Package service holds the client-side session orchestration for CoSplitz:
// registration with one-time-code verification, login, logout, and session
// rehydration on startup.
package service

import (
	"context"

	"github.com/cosplitz/cosplitz-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_service_mock.go -package=mock

// SessionService owns the client-held authentication state and the
// transitions between its phases: anonymous, registered-but-unverified, and
// fully authenticated.
//
// Operations never propagate transport errors to the caller. Each failure is
// converted to a human-readable message on the session's LastError field, and
// the boolean result tells the caller whether to advance.
type SessionService interface {
	// RegisterAndKickoffVerification creates an account, logs it in with the
	// same credentials, and schedules one-time-code delivery in the
	// background. On success the session is authenticated with a pending
	// verification marker. On failure the session is rolled back to empty.
	RegisterAndKickoffVerification(ctx context.Context, req models.RegisterRequest) bool

	// VerifyCode submits the one-time code for the pending verification.
	// Returns false without touching the session status when no verification
	// is in progress.
	VerifyCode(ctx context.Context, code string) bool

	// ResendCode asks the backend to send a fresh one-time code for the
	// pending verification. Failures surface on LastError only.
	ResendCode(ctx context.Context)

	// Login authenticates with credentials. Any pending verification marker
	// is discarded; the one-time-code flow only ever originates from
	// registration.
	Login(ctx context.Context, req models.LoginRequest) bool

	// Logout clears the session and purges the persisted record. Idempotent.
	Logout(ctx context.Context)

	// Initialize seeds the session from the persisted record. A held token is
	// validated against the backend; a rejected token clears the session and
	// purges the record. This is the sole client-side eviction path for an
	// invalid token.
	Initialize(ctx context.Context)

	// CheckAuth reports whether the session is authenticated, initialising it
	// first if that has not happened yet.
	CheckAuth(ctx context.Context) bool

	// ClearError resets LastError.
	ClearError()

	// ClearPendingVerification abandons the verification flow and discards
	// its error context.
	ClearPendingVerification()

	// Session returns a deep copy of the current session state.
	Session() models.Session
}
