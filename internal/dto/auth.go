package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type VerifyLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the client-facing user projection. The password hash is
// never part of it.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type VerifyLoginResponse struct {
	Success     bool         `json:"success"`
	User        UserResponse `json:"user"`
	RedirectURL string       `json:"redirectUrl"`
}

type LoginResponse struct {
	Token       string       `json:"token"`
	User        UserResponse `json:"user"`
	RedirectURL string       `json:"redirectUrl"`
}

type SessionResponse struct {
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	ProfileID string `json:"profileId,omitempty"`
}
