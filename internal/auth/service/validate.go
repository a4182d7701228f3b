package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidationError is a registration rejection with a message safe to show the
// user. Each rule below has its own instance so callers and tests can match
// on identity.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

var (
	ErrUsernameRequired = &ValidationError{Msg: "Username is required"}
	ErrUsernameTooShort = &ValidationError{Msg: "Username must be at least 3 characters"}
	ErrEmailRequired    = &ValidationError{Msg: "Email is required"}
	ErrEmailInvalid     = &ValidationError{Msg: "Invalid email format"}
	ErrPasswordRequired = &ValidationError{Msg: "Password is required"}
	ErrPasswordTooShort = &ValidationError{Msg: "Password must be at least 8 characters"}
	ErrPasswordMismatch = &ValidationError{Msg: "Passwords do not match"}
)

// emailPattern accepts local@domain.tld with no whitespace. Deliberately
// loose beyond that; deliverability is the mail server's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration checks the rules in order and returns the first
// violation. It is a pure function; no store access happens here.
func ValidateRegistration(username, email, password, confirmPassword string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}
	if utf8.RuneCountInString(username) < 3 {
		return ErrUsernameTooShort
	}
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}
