package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/varunai/backend/internal/auth/store"
)

func TestSetAvatar(t *testing.T) {
	ctx := context.Background()
	authSvc, st := newTestAuthService(t)
	userSvc := &UserService{Store: st}

	session, err := authSvc.Register(ctx, "alice", "alice@x.com", "password123", "password123")
	require.NoError(t, err)

	summary, err := userSvc.SetAvatar(ctx, session.User.ID, "data:image/svg+xml;base64,abc123")
	require.NoError(t, err)
	require.Equal(t, "data:image/svg+xml;base64,abc123", summary.Avatar)
	require.Equal(t, "alice", summary.Username)

	t.Run("unknown user", func(t *testing.T) {
		_, err := userSvc.SetAvatar(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", "x")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListOthersExcludesCaller(t *testing.T) {
	ctx := context.Background()
	authSvc, st := newTestAuthService(t)
	userSvc := &UserService{Store: st}

	alice, err := authSvc.Register(ctx, "alice", "alice@x.com", "password123", "password123")
	require.NoError(t, err)
	_, err = authSvc.Register(ctx, "bob", "bob@x.com", "password123", "password123")
	require.NoError(t, err)
	_, err = authSvc.Register(ctx, "carol", "carol@x.com", "password123", "password123")
	require.NoError(t, err)

	others, err := userSvc.ListOthers(ctx, alice.User.ID)
	require.NoError(t, err)
	require.Len(t, others, 2)
	require.Equal(t, "bob", others[0].Username)
	require.Equal(t, "carol", others[1].Username)
	for _, o := range others {
		require.NotEqual(t, alice.User.ID, o.ID)
	}
}
