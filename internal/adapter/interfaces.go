// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CoSplitz

// Package adapter provides the transport layer for talking to the CoSplitz
// REST backend.
//
// The primary abstraction is [AuthAPI], which decouples the session service
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAuthAPI]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to [*APIError], which unwraps
// to the status sentinels defined in errors.go so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrUnauthorized]
// for 401).
//
// Because the backend's response envelope is not uniform across endpoints,
// Register, Login, and GetUser return the raw response body; the tolerant
// extraction helpers in extract.go turn those bodies into typed values.
package adapter

import (
	"context"

	"github.com/cosplitz/cosplitz-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_api_mock.go -package=mock

// AuthAPI defines transport-agnostic communication with the CoSplitz
// authentication endpoints. Implementations are responsible for
// serialisation, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
type AuthAPI interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty string clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to POST /api/register/ and
	// returns the raw response body. The envelope shape varies, so account
	// id extraction is left to [ExtractAccountID]. Returns an error if the
	// request fails or the server responds with a non-2xx status.
	Register(ctx context.Context, req models.RegisterRequest) ([]byte, error)

	// Login sends credentials to POST /api/login/ and returns the raw
	// response body; the session token is extracted with [ExtractToken].
	// The adapter does not store the token itself; committing it is the
	// session service's decision.
	Login(ctx context.Context, req models.LoginRequest) ([]byte, error)

	// GetUser fetches the account behind the current bearer token from
	// GET /api/user/info/ and returns the raw response body; the account is
	// extracted with [ExtractAccount].
	GetUser(ctx context.Context) ([]byte, error)

	// IssueOTP asks the backend to send a one-time code to the account via
	// GET /api/otp/{accountID}/.
	IssueOTP(ctx context.Context, accountID int64) error

	// VerifyOTP submits a one-time code to POST /api/verify_otp/.
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) error
}
