package types

// SignUpRequest creates an admin account.
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the signup payload.
func (r *SignUpRequest) Validate() error {
	if r.Username == "" {
		return &Error{Code: "InvalidCredentials", Message: "username is required"}
	}
	if len(r.Password) < 6 {
		return &Error{Code: "InvalidCredentials", Message: "password must be at least 6 characters"}
	}
	return nil
}

// SignInRequest verifies admin credentials.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo is the body returned by a successful signin.
type UserInfo struct {
	Username string `json:"username"`
}
