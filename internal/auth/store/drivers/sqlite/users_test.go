package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/varunai/backend/internal/auth/domain"
	"github.com/varunai/backend/internal/auth/store"
	"github.com/varunai/backend/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore("file:" + filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testUser(username, email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehashfakehashfakehashfakehashfake",
	}
}

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := testUser("alice", "alice@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	byID, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, byID.Username)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, u.PasswordHash, byID.PasswordHash)
	require.False(t, byID.CreatedAt.IsZero())
	require.False(t, byID.UpdatedAt.IsZero())

	byUsername, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, byUsername.ID)

	_, err = st.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetUserByUsernameOrEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := testUser("alice", "alice@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	hit, err := st.Users().GetUserByUsernameOrEmail(ctx, "alice", "other@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, hit.ID)

	hit, err = st.Users().GetUserByUsernameOrEmail(ctx, "other", "alice@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, hit.ID)

	_, err = st.Users().GetUserByUsernameOrEmail(ctx, "other", "other@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUserEnforcesUniqueness(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Users().CreateUser(ctx, testUser("alice", "alice@x.com")))

	t.Run("duplicate username", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, testUser("alice", "other@x.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, testUser("other", "alice@x.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	count, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUpdateAvatar(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := testUser("alice", "alice@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	before, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond) // ensure updated_at moves

	require.NoError(t, st.Users().UpdateAvatar(ctx, u.ID, "avatar-data"))

	after, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "avatar-data", after.Avatar)
	require.True(t, after.UpdatedAt.After(before.UpdatedAt))

	require.ErrorIs(t, st.Users().UpdateAvatar(ctx, idx.New().String(), "x"), store.ErrNotFound)
}

func TestListUsersExcept(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := testUser("alice", "alice@x.com")
	bob := testUser("bob", "bob@x.com")
	carol := testUser("carol", "carol@x.com")
	for _, u := range []domain.User{carol, alice, bob} {
		require.NoError(t, st.Users().CreateUser(ctx, u))
	}

	users, err := st.Users().ListUsersExcept(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Ordered by username, caller excluded.
	require.Equal(t, "bob", users[0].Username)
	require.Equal(t, "carol", users[1].Username)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	boom := context.Canceled // any sentinel will do
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, testUser("alice", "alice@x.com")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, testUser("alice", "alice@x.com"))
	})
	require.NoError(t, err)

	count, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
