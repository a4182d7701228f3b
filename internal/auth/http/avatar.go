package http

import (
	"errors"
	"net/http"

	"github.com/varunai/backend/internal/auth/service"
	"github.com/varunai/backend/internal/auth/store"
	"github.com/varunai/backend/pkg/authapi"
	"github.com/varunai/backend/pkg/httpx"
	"github.com/varunai/backend/pkg/slogx"
)

type SetAvatarHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles POST /auth/setavatar. The target user comes from the
// verified token, never from the request body, so a caller can only change
// their own avatar.
func (h *SetAvatarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req authapi.SetAvatarRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authapi.AuthResponse{
			Status: false,
			Msg:    "Invalid request body",
		})
		return
	}
	if req.Avatar == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, authapi.AuthResponse{
			Status: false,
			Msg:    "Avatar is required",
		})
		return
	}

	summary, err := h.UserService.SetAvatar(ctx, userID, req.Avatar)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token subject no longer exists; treat the session as dead.
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		log.Error("set avatar failed", "err", err)
		writeServerError(w)
		return
	}

	user := toUserSummary(summary)
	httpx.WriteJSON(w, http.StatusOK, authapi.AuthResponse{
		Status: true,
		User:   &user,
	})
}
