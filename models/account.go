package models

// Account roles as returned by the CoSplitz backend. Role is used only for
// client-side route-guard dispatch; real enforcement happens server-side.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a registered CoSplitz user as reported by the backend.
// The client treats the backend as the single source of truth for every
// field; in particular EmailVerified is only ever flipped after a fresh
// profile fetch confirms it.
type Account struct {
	// ID is the backend-assigned account identifier.
	ID int64 `json:"id"`

	// Email is the unique account email, lowercased and trimmed.
	Email string `json:"email"`

	// FirstName and LastName are the registered profile names.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Name is the backend-provided display name. When the account is
	// synthesized locally it is built from the profile names, falling back
	// to the local part of the email.
	Name string `json:"name"`

	// Role is one of RoleUser or RoleAdmin.
	Role string `json:"role"`

	// IsActive reports whether the account is enabled on the backend.
	IsActive bool `json:"is_active"`

	// EmailVerified is authoritative only from the backend. The client never
	// sets it to true without a confirming profile fetch.
	EmailVerified bool `json:"email_verified"`

	// Nationality is an optional profile field.
	Nationality string `json:"nationality,omitempty"`

	// CreatedAt and UpdatedAt are backend timestamps in whatever string
	// format the backend emits. Informational only.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
