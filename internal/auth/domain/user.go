package domain

import "time"

// User is a registered identity. Username and email are each globally unique;
// the store's constraints are the final authority on that, including under
// concurrent registration.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt encoded; never leaves the store boundary
	Avatar       string // optional, set by the chat client after signup
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary is the public-safe projection of a User. Everything that crosses
// the HTTP boundary goes through this.
type Summary struct {
	ID       string
	Username string
	Email    string
	Avatar   string
}

// Summary strips the credential material from a User.
func (u User) Summary() Summary {
	return Summary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}
}
