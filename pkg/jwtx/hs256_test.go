package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/varunai/backend/pkg/jwtx"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "varunai-backend", 0)
	require.NoError(t, err)

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims("01ARZ3NDEKTSV4RRFFQ69G5FAV", "alice", "varunai-backend", jwtx.DefaultSessionTTL, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "varunai-backend", got.Issuer)
	require.WithinDuration(t, now.Add(jwtx.DefaultSessionTTL), got.ExpiresAt.Time, time.Second)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "", 0)
	require.NoError(t, err)

	issued := time.Now().UTC().Add(-25 * time.Hour)
	claims := jwtx.NewSessionClaims("user-id", "alice", "", jwtx.DefaultSessionTTL, issued)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "", 0)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewSessionClaims("user-id", "alice", "", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character in the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = verifier.Verify(tampered)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	other := []byte("ffffffffffffffffffffffffffffffff")
	verifier, err := jwtx.NewVerifierHS256(other, "", 0)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewSessionClaims("user-id", "alice", "", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "varunai-backend", 0)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewSessionClaims("user-id", "alice", "someone-else", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	verifier, err := jwtx.NewVerifierHS256(testSecret, "", 0)
	require.NoError(t, err)

	_, err = verifier.Verify("not.a.jwt")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}

func TestWeakSecretRejected(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSignerHS256(nil)
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = jwtx.NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = jwtx.NewVerifierHS256([]byte("short"), "", 0)
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}
