package models

// Status reports whether an asynchronous session operation is in flight.
// It is advisory: the orchestrator does not reject concurrent calls, the
// caller is expected to disable conflicting actions while busy.
type Status string

const (
	StatusIdle Status = "idle"
	StatusBusy Status = "busy"
)

// PendingVerification marks a registration whose one-time code has not been
// verified yet. It coexists with an authenticated session on purpose: the
// account holds a token while the email is still unverified.
type PendingVerification struct {
	// Email is the address the code was sent to (lowercased, trimmed).
	Email string `json:"email"`

	// AccountID is the backend identifier used to request code issuance.
	AccountID int64 `json:"account_id"`
}

// Session is the client-held authentication state. It lives in memory as a
// process-wide singleton owned by the session service and is mirrored to
// durable storage after every mutation (Status and LastError excluded).
//
// Invariant: IsAuthenticated implies Token is non-empty.
type Session struct {
	// User is the resolved account, or nil before the first successful auth
	// call. It may be a locally synthesized placeholder right after
	// registration if the profile fetch failed.
	User *Account `json:"user"`

	// Token is the opaque session credential obtained from login or the
	// registration-triggered auto-login.
	Token string `json:"token"`

	// IsAuthenticated is true iff a token is held and the account is
	// considered resolvable.
	IsAuthenticated bool `json:"isAuthenticated"`

	// PendingVerification is non-nil while a registration awaits its
	// one-time code.
	PendingVerification *PendingVerification `json:"pendingVerification"`

	// Status and LastError are transient and never persisted.
	Status    Status `json:"-"`
	LastError string `json:"-"`
}

// PersistedSession is the subset of Session mirrored to durable storage,
// stored JSON-encoded under a single fixed record key. Field names match
// the record layout the web front end established, so a record written by
// either client rehydrates in both.
type PersistedSession struct {
	User                *Account             `json:"user"`
	Token               string               `json:"token"`
	IsAuthenticated     bool                 `json:"isAuthenticated"`
	PendingVerification *PendingVerification `json:"pendingVerification"`
}

// Snapshot extracts the persistable subset of the session.
func (s Session) Snapshot() PersistedSession {
	return PersistedSession{
		User:                s.User,
		Token:               s.Token,
		IsAuthenticated:     s.IsAuthenticated,
		PendingVerification: s.PendingVerification,
	}
}

// Empty reports whether the session carries no credentials, no user, and no
// pending verification. Empty sessions have no persisted record.
func (s Session) Empty() bool {
	return s.User == nil && s.Token == "" && !s.IsAuthenticated && s.PendingVerification == nil
}
