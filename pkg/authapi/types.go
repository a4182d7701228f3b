// Package authapi holds the wire types for the VarunAI auth backend and a
// small Go client for them. The server handlers, the tests, and external
// consumers all share these definitions so the JSON surface cannot drift.
package authapi

import "time"

// UserSummary is the public-safe view of a user. It is the only shape a user
// ever takes on the wire; the password hash has no JSON representation
// anywhere in this package.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register. ConfirmPassword is
// optional on the wire: clients that already compared the two fields may omit
// it, which is what the web client does.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// AuthResponse is the uniform envelope for auth operations. Status is false
// exactly when Msg carries a user-facing failure reason.
type AuthResponse struct {
	Status bool         `json:"status"`
	Msg    string       `json:"msg,omitempty"`
	User   *UserSummary `json:"user,omitempty"`
	Token  string       `json:"token,omitempty"`
}

// SetAvatarRequest is the body of POST /auth/setavatar.
type SetAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// UsersResponse is the body of GET /auth/allusers.
type UsersResponse struct {
	Status bool          `json:"status"`
	Users  []UserSummary `json:"users"`
}

// HealthResponse is the liveness probe payload the chat client checks before
// attempting a login.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}
