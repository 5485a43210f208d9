// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CoSplitz

// Package guard implements the route-guard contract page shells evaluate
// before rendering protected content.
package guard

import (
	"context"

	"github.com/cosplitz/cosplitz-client/internal/logger"
	"github.com/cosplitz/cosplitz-client/models"
)

// Decision tells the caller where to send the user before showing a guarded
// route.
type Decision string

const (
	// Allow renders the requested route.
	Allow Decision = "allow"

	// RedirectLogin sends an unauthenticated user to the login route.
	RedirectLogin Decision = "login"

	// RedirectVerification sends a user with an unfinished registration to
	// the verification step.
	RedirectVerification Decision = "verification"

	// RedirectUnauthorized sends a user whose role does not match the route's
	// requirement to the unauthorized page.
	RedirectUnauthorized Decision = "unauthorized"
)

// SessionSource is the slice of the session service the guard needs.
type SessionSource interface {
	Initialize(ctx context.Context)
	Session() models.Session
}

// Guard evaluates the session against a route's requirements.
type Guard struct {
	sessions SessionSource
	logger   *logger.Logger
}

func New(sessions SessionSource, log *logger.Logger) *Guard {
	return &Guard{sessions: sessions, logger: log}
}

// Authorize rehydrates the session and decides whether the route may render.
// requiredRole is empty for routes any authenticated account may view.
//
// Checks apply in order: authentication, pending verification, role. A user
// who is authenticated but still mid-verification is always routed back to
// the verification step first.
func (g *Guard) Authorize(ctx context.Context, requiredRole string) Decision {
	g.sessions.Initialize(ctx)
	session := g.sessions.Session()

	if !session.IsAuthenticated || session.Token == "" {
		g.logger.Debug().Msg("guard: not authenticated")
		return RedirectLogin
	}

	if session.PendingVerification != nil {
		g.logger.Debug().
			Str("email", session.PendingVerification.Email).
			Msg("guard: verification pending")
		return RedirectVerification
	}

	if requiredRole != "" && (session.User == nil || session.User.Role != requiredRole) {
		g.logger.Warn().Str("required_role", requiredRole).Msg("guard: role mismatch")
		return RedirectUnauthorized
	}

	return Allow
}
