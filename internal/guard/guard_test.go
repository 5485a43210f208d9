package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/cosplitz/cosplitz-client/internal/logger"
	"github.com/cosplitz/cosplitz-client/internal/mock"
	"github.com/cosplitz/cosplitz-client/models"
)

func newGuardWithSession(t *testing.T, session models.Session) *Guard {
	t.Helper()

	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)
	sessions.EXPECT().Initialize(gomock.Any())
	sessions.EXPECT().Session().Return(session)

	return New(sessions, logger.Nop())
}

func TestAuthorize(t *testing.T) {
	verifiedUser := &models.Account{ID: 1, Email: "a@b.com", Role: models.RoleUser, EmailVerified: true}

	tests := []struct {
		name         string
		session      models.Session
		requiredRole string
		want         Decision
	}{
		{
			name:    "anonymous",
			session: models.Session{},
			want:    RedirectLogin,
		},
		{
			name: "authenticated flag without token",
			session: models.Session{
				User:            verifiedUser,
				IsAuthenticated: true,
			},
			want: RedirectLogin,
		},
		{
			name: "verification pending beats role checks",
			session: models.Session{
				User:                verifiedUser,
				Token:               "tok",
				IsAuthenticated:     true,
				PendingVerification: &models.PendingVerification{Email: "a@b.com", AccountID: 1},
			},
			requiredRole: models.RoleUser,
			want:         RedirectVerification,
		},
		{
			name: "authenticated, no role required",
			session: models.Session{
				User:            verifiedUser,
				Token:           "tok",
				IsAuthenticated: true,
			},
			want: Allow,
		},
		{
			name: "matching role",
			session: models.Session{
				User:            verifiedUser,
				Token:           "tok",
				IsAuthenticated: true,
			},
			requiredRole: models.RoleUser,
			want:         Allow,
		},
		{
			name: "role mismatch",
			session: models.Session{
				User:            verifiedUser,
				Token:           "tok",
				IsAuthenticated: true,
			},
			requiredRole: models.RoleAdmin,
			want:         RedirectUnauthorized,
		},
		{
			name: "role required but user missing",
			session: models.Session{
				Token:           "tok",
				IsAuthenticated: true,
			},
			requiredRole: models.RoleUser,
			want:         RedirectUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGuardWithSession(t, tt.session)
			assert.Equal(t, tt.want, g.Authorize(context.Background(), tt.requiredRole))
		})
	}
}
