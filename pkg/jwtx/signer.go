package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLen is the minimum HMAC secret length we accept. Anything shorter
// than the hash output weakens HS256 below its design strength.
const MinSecretLen = 32

// ErrWeakSecret reports a missing or too-short signing secret.
var ErrWeakSecret = errors.New("jwtx: signing secret missing or shorter than 32 bytes")

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// HS256Signer implements Signer using HMAC-SHA256 with a process-wide secret.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HS256 signer. It refuses weak secrets outright so
// the caller fails at startup instead of issuing weakly-signed tokens.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{secret: secret}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check on the secret material.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinSecretLen {
		return ErrWeakSecret
	}
	return nil
}
