package http

import (
	"net/http"

	"github.com/varunai/backend/internal/auth/service"
	"github.com/varunai/backend/pkg/authapi"
	"github.com/varunai/backend/pkg/httpx"
	"github.com/varunai/backend/pkg/slogx"
)

type AllUsersHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles GET /auth/allusers: the caller's contact list, which is
// everyone but themselves, public-safe fields only.
func (h *AllUsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	summaries, err := h.UserService.ListOthers(ctx, userID)
	if err != nil {
		log.Error("list users failed", "err", err)
		writeServerError(w)
		return
	}

	users := make([]authapi.UserSummary, 0, len(summaries))
	for _, s := range summaries {
		users = append(users, toUserSummary(s))
	}

	httpx.WriteJSON(w, http.StatusOK, authapi.UsersResponse{
		Status: true,
		Users:  users,
	})
}

// LogoutHandler acknowledges a logout. Session tokens are self-contained and
// cannot be revoked server-side, so the real work is the client discarding
// its token; this endpoint exists to keep the client surface uniform.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, authapi.AuthResponse{Status: true})
}
