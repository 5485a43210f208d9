package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cosplitz/cosplitz-client/models"
)

func validRegistration() models.RegisterRequest {
	return models.RegisterRequest{
		Email:       "jane@cosplitz.io",
		Password:    "s3cretpass",
		FirstName:   "Jane",
		LastName:    "Doe",
		Nationality: "Dutch",
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*models.RegisterRequest) {},
		},
		{
			name:   "nationality optional",
			mutate: func(r *models.RegisterRequest) { r.Nationality = "" },
		},
		{
			name:    "missing email",
			mutate:  func(r *models.RegisterRequest) { r.Email = "" },
			wantErr: ErrEmailRequired,
		},
		{
			name:    "malformed email",
			mutate:  func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "missing password",
			mutate:  func(r *models.RegisterRequest) { r.Password = "" },
			wantErr: ErrPasswordRequired,
		},
		{
			name:    "short password",
			mutate:  func(r *models.RegisterRequest) { r.Password = "short" },
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "missing first name",
			mutate:  func(r *models.RegisterRequest) { r.FirstName = "   " },
			wantErr: ErrFirstNameRequired,
		},
		{
			name:    "missing last name",
			mutate:  func(r *models.RegisterRequest) { r.LastName = "" },
			wantErr: ErrLastNameRequired,
		},
		{
			name:    "nationality too short",
			mutate:  func(r *models.RegisterRequest) { r.Nationality = "NL" },
			wantErr: ErrNationalityTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration()
			tt.mutate(&req)

			err := ValidateRegistration(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRegistration_ReportsAllViolations(t *testing.T) {
	err := ValidateRegistration(models.RegisterRequest{})

	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.ErrorIs(t, err, ErrPasswordRequired)
	assert.ErrorIs(t, err, ErrFirstNameRequired)
	assert.ErrorIs(t, err, ErrLastNameRequired)
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin(models.LoginRequest{Email: "jane@cosplitz.io", Password: "legacy"}))

	assert.ErrorIs(t,
		ValidateLogin(models.LoginRequest{Email: "jane@cosplitz.io", Password: "pw"}),
		ErrPasswordTooShort)
	assert.ErrorIs(t,
		ValidateLogin(models.LoginRequest{Password: "legacy"}),
		ErrEmailRequired)
}

func TestValidateOTP(t *testing.T) {
	assert.NoError(t, ValidateOTP("123456"))
	assert.NoError(t, ValidateOTP(" 123456 "))

	assert.ErrorIs(t, ValidateOTP(""), ErrCodeRequired)
	assert.ErrorIs(t, ValidateOTP("12345"), ErrCodeNotDigits)
	assert.ErrorIs(t, ValidateOTP("1234567"), ErrCodeNotDigits)
	assert.ErrorIs(t, ValidateOTP("12345a"), ErrCodeNotDigits)
}
