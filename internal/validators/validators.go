// Package validators holds the local form checks the CLI applies before an
// operation reaches the session service. They mirror the backend's rules so
// obviously bad input fails fast, but the backend remains authoritative.
package validators

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"

	"github.com/cosplitz/cosplitz-client/models"
)

var (
	ErrEmailRequired       = errors.New("email is required")
	ErrEmailInvalid        = errors.New("email address is not valid")
	ErrPasswordRequired    = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrFirstNameRequired   = errors.New("first name is required")
	ErrLastNameRequired    = errors.New("last name is required")
	ErrNationalityTooShort = errors.New("nationality must be at least 3 characters")
	ErrCodeRequired        = errors.New("verification code is required")
	ErrCodeNotDigits       = errors.New("verification code must be 6 digits")
)

const (
	minRegisterPasswordLen = 8
	minLoginPasswordLen    = 6
	otpLength              = 6
)

// ValidateRegistration checks a registration payload. All violations are
// reported at once via errors.Join.
func ValidateRegistration(req models.RegisterRequest) error {
	var errs []error

	errs = append(errs, validateEmail(req.Email))

	switch {
	case req.Password == "":
		errs = append(errs, ErrPasswordRequired)
	case len(req.Password) < minRegisterPasswordLen:
		errs = append(errs, ErrPasswordTooShort)
	}

	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, ErrFirstNameRequired)
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs = append(errs, ErrLastNameRequired)
	}

	if n := strings.TrimSpace(req.Nationality); n != "" && len(n) < 3 {
		errs = append(errs, ErrNationalityTooShort)
	}

	return errors.Join(errs...)
}

// ValidateLogin checks credentials before they are sent. The password rule is
// looser than registration's: existing accounts may predate the current
// strength policy.
func ValidateLogin(req models.LoginRequest) error {
	var errs []error

	errs = append(errs, validateEmail(req.Email))

	switch {
	case req.Password == "":
		errs = append(errs, ErrPasswordRequired)
	case len(req.Password) < minLoginPasswordLen:
		errs = append(errs, ErrPasswordTooShort)
	}

	return errors.Join(errs...)
}

// ValidateOTP checks a one-time code before submission.
func ValidateOTP(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeRequired
	}
	if len(code) != otpLength {
		return ErrCodeNotDigits
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return ErrCodeNotDigits
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailInvalid
	}

	return nil
}
