package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/varunai/backend/internal/auth/domain"
	"github.com/varunai/backend/internal/auth/store"
	"github.com/varunai/backend/pkg/cryptox"
	"github.com/varunai/backend/pkg/idx"
	"github.com/varunai/backend/pkg/jwtx"
	"github.com/varunai/backend/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// Keeping them indistinguishable stops username enumeration through the
	// login endpoint. Do not specialise the message.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIdentityExists covers duplicate username and duplicate email without
	// saying which collided, for the same anti-enumeration reason.
	ErrIdentityExists = errors.New("user already exists with this username or email")
)

// AuthService orchestrates validator, store, hasher and token issuer. It is
// the only entry point callers get for register and login.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Session is a successful authentication result: the public-safe identity
// plus its bearer token.
type Session struct {
	User  domain.Summary
	Token string
}

// Register validates, checks for duplicates, hashes the password and creates
// the user. The store's unique constraints settle concurrent registrations;
// the pre-check only exists to answer the common case without burning a
// bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, email, password, confirmPassword string) (Session, error) {
	log := slogx.FromContext(ctx)

	if err := ValidateRegistration(username, email, password, confirmPassword); err != nil {
		return Session{}, err
	}

	_, err := s.Store.Users().GetUserByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil:
		return Session{}, ErrIdentityExists
	case errors.Is(err, store.ErrNotFound):
		// free to register
	default:
		log.Error("duplicate check failed", slog.Any("error", err))
		return Session{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("password hashing failed", slog.Any("error", err))
		return Session{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent registration.
			return Session{}, ErrIdentityExists
		}
		log.Error("user creation failed", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return s.issueSession(ctx, user)
}

// Login verifies the credentials and issues a session token. Unknown user and
// wrong password take the same path out.
func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		log.Error("user lookup failed", slog.Any("error", err))
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			log.Info("login rejected", slog.String("username", username))
			return Session{}, ErrInvalidCredentials
		}
		log.Error("password verification failed", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return s.issueSession(ctx, user)
}

func (s *AuthService) issueSession(ctx context.Context, user domain.User) (Session, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Username, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("token signing failed", slog.Any("error", err))
		return Session{}, err
	}

	return Session{User: user.Summary(), Token: token}, nil
}
