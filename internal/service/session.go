package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/cosplitz/cosplitz-client/internal/adapter"
	"github.com/cosplitz/cosplitz-client/internal/logger"
	"github.com/cosplitz/cosplitz-client/internal/store"
	"github.com/cosplitz/cosplitz-client/models"
)

// sessionRecordKey is the fixed name of the persisted session record.
const sessionRecordKey = "auth-storage"

type sessionService struct {
	api    adapter.AuthAPI
	store  store.SessionStore
	logger *logger.Logger

	mu          sync.RWMutex
	session     models.Session
	initialized bool

	// otpWG tracks background one-time-code issuance so tests can wait for
	// the detached goroutine to settle.
	otpWG sync.WaitGroup
}

// NewSessionService wires the session orchestrator to its transport and
// persistence collaborators. The returned service starts with an empty
// session; call Initialize to seed it from the persisted record.
func NewSessionService(api adapter.AuthAPI, st store.SessionStore, log *logger.Logger) SessionService {
	return &sessionService{api: api, store: st, logger: log}
}

func (s *sessionService) RegisterAndKickoffVerification(ctx context.Context, req models.RegisterRequest) bool {
	req.Email = normalizeEmail(req.Email)
	s.begin()

	body, err := s.api.Register(ctx, req)
	if err != nil {
		s.rollback(ErrRegistrationIncomplete, errorMessage(err, MsgRegistrationFailed))
		return false
	}

	accountID, ok := adapter.ExtractAccountID(body)
	if !ok {
		s.rollback(ErrRegistrationIncomplete, MsgRegistrationFailed)
		return false
	}

	loginBody, err := s.api.Login(ctx, models.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		s.rollback(ErrAutoLoginFailed, errorMessage(err, MsgRegistrationFailed))
		return false
	}

	token, ok := adapter.ExtractToken(loginBody)
	if !ok {
		s.rollback(ErrAutoLoginFailed, MsgRegistrationFailed)
		return false
	}
	s.api.SetToken(token)

	// best effort: a failed profile fetch falls back to a locally
	// synthesized account rather than failing the registration
	account, ok := s.fetchAccount(ctx)
	if !ok {
		account = placeholderAccount(req)
	}

	s.mu.Lock()
	s.session.User = &account
	s.session.Token = token
	s.session.IsAuthenticated = true
	s.session.PendingVerification = &models.PendingVerification{Email: req.Email, AccountID: accountID}
	s.session.Status = models.StatusIdle
	s.persistLocked()
	s.mu.Unlock()

	s.logger.Info().
		Str("email", req.Email).
		Int64("account_id", accountID).
		Msg("registered, verification pending")

	// fire and forget: the registration result does not wait for code
	// delivery
	s.otpWG.Add(1)
	go func() {
		defer s.otpWG.Done()
		if err := s.api.IssueOTP(context.WithoutCancel(ctx), accountID); err != nil {
			s.logger.Err(err).Int64("account_id", accountID).Msg(ErrOTPIssueFailed.Error())
			s.mu.Lock()
			s.session.LastError = MsgOTPIssueFailed
			s.mu.Unlock()
		}
	}()

	return true
}

func (s *sessionService) VerifyCode(ctx context.Context, code string) bool {
	pending, ok := s.pending()
	if !ok {
		s.logger.Warn().Msg(ErrNoVerificationInProgress.Error())
		s.mu.Lock()
		s.session.LastError = MsgNoVerificationInProgress
		s.mu.Unlock()
		return false
	}

	s.begin()

	err := s.api.VerifyOTP(ctx, models.VerifyOTPRequest{Email: pending.Email, OTP: code})
	if err != nil {
		// the code may simply be mistyped, keep the verification pending so
		// the user can retry
		s.fail(ErrVerificationFailed, errorMessage(err, MsgVerificationFailed))
		return false
	}

	// email_verified is authoritative only from the backend, so a successful
	// verify call must be confirmed by a profile re-fetch. When that fetch
	// fails the verification stays pending rather than being trusted locally.
	account, ok := s.fetchAccount(ctx)
	if !ok {
		s.fail(ErrUserFetchFailed, MsgVerificationUnconfirmed)
		return false
	}

	s.mu.Lock()
	s.session.User = &account
	s.session.PendingVerification = nil
	s.session.Status = models.StatusIdle
	s.persistLocked()
	s.mu.Unlock()

	s.logger.Info().Str("email", pending.Email).Msg("email verified")

	return true
}

func (s *sessionService) ResendCode(ctx context.Context) {
	pending, ok := s.pending()
	if !ok {
		s.logger.Warn().Msg(ErrNoVerificationInProgress.Error())
		s.mu.Lock()
		s.session.LastError = MsgNoVerificationInProgress
		s.mu.Unlock()
		return
	}

	s.begin()

	if err := s.api.IssueOTP(ctx, pending.AccountID); err != nil {
		s.fail(ErrOTPIssueFailed, errorMessage(err, MsgResendFailed))
		return
	}

	s.mu.Lock()
	s.session.Status = models.StatusIdle
	s.mu.Unlock()
}

func (s *sessionService) Login(ctx context.Context, req models.LoginRequest) bool {
	req.Email = normalizeEmail(req.Email)
	s.begin()

	body, err := s.api.Login(ctx, req)
	if err != nil {
		s.rollback(ErrInvalidCredentials, errorMessage(err, MsgLoginFailed))
		return false
	}

	token, ok := adapter.ExtractToken(body)
	if !ok {
		s.rollback(ErrInvalidCredentials, MsgLoginFailed)
		return false
	}
	s.api.SetToken(token)

	account, ok := s.fetchAccount(ctx)
	if !ok {
		s.rollback(ErrUserFetchFailed, MsgUserFetchFailed)
		return false
	}

	s.mu.Lock()
	s.session.User = &account
	s.session.Token = token
	s.session.IsAuthenticated = true
	// login never resumes the one-time-code flow, that only originates from
	// registration
	s.session.PendingVerification = nil
	s.session.Status = models.StatusIdle
	s.persistLocked()
	s.mu.Unlock()

	s.logger.Info().Str("email", req.Email).Msg("logged in")

	return true
}

func (s *sessionService) Logout(_ context.Context) {
	s.clearSession("")
	s.logger.Info().Msg("logged out")
}

func (s *sessionService) Initialize(ctx context.Context) {
	s.mu.Lock()
	if !s.initialized {
		s.initialized = true
		s.loadPersistedLocked()
	}
	token := s.session.Token
	s.mu.Unlock()

	if token == "" {
		s.mu.Lock()
		s.session.User = nil
		s.session.IsAuthenticated = false
		s.mu.Unlock()
		return
	}

	s.api.SetToken(token)

	account, ok := s.fetchAccount(ctx)
	if !ok {
		// the held token was rejected or the profile is unreachable, evict
		s.logger.Warn().Msg("persisted session rejected by backend, clearing")
		s.clearSession("")
		return
	}

	s.mu.Lock()
	s.session.User = &account
	s.session.IsAuthenticated = true
	s.persistLocked()
	s.mu.Unlock()
}

func (s *sessionService) CheckAuth(ctx context.Context) bool {
	s.mu.RLock()
	initialized := s.initialized
	s.mu.RUnlock()

	if !initialized {
		s.Initialize(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated && s.session.Token != ""
}

func (s *sessionService) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.LastError = ""
}

func (s *sessionService) ClearPendingVerification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.PendingVerification = nil
	s.session.LastError = ""
	s.persistLocked()
}

func (s *sessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.session
	if s.session.User != nil {
		user := *s.session.User
		session.User = &user
	}
	if s.session.PendingVerification != nil {
		pending := *s.session.PendingVerification
		session.PendingVerification = &pending
	}

	return session
}

// begin marks the session busy and clears the previous error.
func (s *sessionService) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Status = models.StatusBusy
	s.session.LastError = ""
}

// fail finishes an operation that keeps the session's contents: status back
// to idle, LastError set.
func (s *sessionService) fail(kind error, message string) {
	s.logger.Warn().Str("reason", message).Msg(kind.Error())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Status = models.StatusIdle
	s.session.LastError = message
}

// rollback finishes a hard failure: the session is returned to fully empty,
// the persisted record purged, and the adapter's token dropped.
func (s *sessionService) rollback(kind error, message string) {
	s.logger.Warn().Str("reason", message).Msg(kind.Error())
	s.clearSession(message)
}

func (s *sessionService) clearSession(lastError string) {
	s.api.SetToken("")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.Session{Status: models.StatusIdle, LastError: lastError}
	s.store.Remove(sessionRecordKey)
}

// pending returns a copy of the pending verification marker.
func (s *sessionService) pending() (models.PendingVerification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session.PendingVerification == nil {
		return models.PendingVerification{}, false
	}
	return *s.session.PendingVerification, true
}

// fetchAccount retrieves the profile behind the adapter's current token.
func (s *sessionService) fetchAccount(ctx context.Context) (models.Account, bool) {
	body, err := s.api.GetUser(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("profile fetch failed")
		return models.Account{}, false
	}

	account, ok := adapter.ExtractAccount(body)
	if !ok {
		s.logger.Warn().Msg("no account in profile response")
		return models.Account{}, false
	}

	return account, true
}

// persistLocked mirrors the persisted subset of the session to the store.
// Callers must hold s.mu.
func (s *sessionService) persistLocked() {
	snapshot := s.session.Snapshot()
	if s.session.Empty() {
		s.store.Remove(sessionRecordKey)
		return
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Err(err).Msg("failed to encode session record")
		return
	}

	s.store.Set(sessionRecordKey, payload)
}

// loadPersistedLocked seeds the in-memory session from the persisted record.
// Callers must hold s.mu.
func (s *sessionService) loadPersistedLocked() {
	raw, ok := s.store.Get(sessionRecordKey)
	if !ok {
		return
	}

	var persisted models.PersistedSession
	if err := json.Unmarshal(raw, &persisted); err != nil {
		s.logger.Err(err).Msg("corrupt session record, purging")
		s.store.Remove(sessionRecordKey)
		return
	}

	s.session.User = persisted.User
	s.session.Token = persisted.Token
	s.session.IsAuthenticated = persisted.IsAuthenticated
	s.session.PendingVerification = persisted.PendingVerification
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// placeholderAccount synthesizes a minimal account from the registration
// payload for when the profile fetch right after registration fails.
func placeholderAccount(req models.RegisterRequest) models.Account {
	name := strings.TrimSpace(req.FirstName + " " + req.LastName)
	if name == "" {
		name, _, _ = strings.Cut(req.Email, "@")
	}

	return models.Account{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Name:        name,
		Nationality: req.Nationality,
		Role:        models.RoleUser,
		IsActive:    true,
	}
}
