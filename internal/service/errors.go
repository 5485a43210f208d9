package service

import "errors"

// Failure kinds of the session operations. They classify log records and
// tests; the user-facing text travels on the session's LastError field.
var (
	ErrRegistrationIncomplete   = errors.New("registration incomplete: no account id in response")
	ErrAutoLoginFailed          = errors.New("auto-login after registration failed")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUserFetchFailed          = errors.New("user profile fetch failed")
	ErrNoVerificationInProgress = errors.New("no verification in progress")
	ErrVerificationFailed       = errors.New("verification failed")
	ErrOTPIssueFailed           = errors.New("one-time code issue failed")
)

// Generic fallbacks used when the backend supplies no message of its own.
const (
	MsgRegistrationFailed       = "Registration failed"
	MsgLoginFailed              = "Login failed"
	MsgVerificationFailed       = "OTP verification failed"
	MsgResendFailed             = "Failed to resend OTP"
	MsgOTPIssueFailed           = "Failed to send OTP. Try again."
	MsgVerificationUnconfirmed  = "Could not confirm verification. Try again."
	MsgNoVerificationInProgress = "No verification in progress"
	MsgUserFetchFailed          = "Failed to load your profile"
)
