package models

// RegisterRequest is the body of POST /api/register/. The service lowercases
// and trims Email before sending; the remaining fields are passed through as
// validated by the caller.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Nationality string `json:"nationality"`
}

// LoginRequest is the body of POST /api/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyOTPRequest is the body of POST /api/verify_otp/.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
