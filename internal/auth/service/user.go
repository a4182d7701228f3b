package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/varunai/backend/internal/auth/domain"
	"github.com/varunai/backend/internal/auth/store"
	"github.com/varunai/backend/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// SetAvatar updates the caller's avatar and returns the refreshed summary.
func (s *UserService) SetAvatar(ctx context.Context, userID, avatar string) (domain.Summary, error) {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().UpdateAvatar(ctx, userID, avatar); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("avatar update failed", slog.Any("error", err))
		}
		return domain.Summary{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.Summary{}, err
	}
	return user.Summary(), nil
}

// ListOthers returns the public-safe summaries of every user except userID.
// This backs the chat client's contact list.
func (s *UserService) ListOthers(ctx context.Context, userID string) ([]domain.Summary, error) {
	users, err := s.Store.Users().ListUsersExcept(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.Summary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}
