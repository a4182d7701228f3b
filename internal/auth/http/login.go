package http

import (
	"errors"
	"net/http"

	"github.com/varunai/backend/internal/auth/service"
	"github.com/varunai/backend/pkg/authapi"
	"github.com/varunai/backend/pkg/httpx"
	"github.com/varunai/backend/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /auth/login. Unknown user and wrong password both
// come back as the same "Invalid credentials" body; nothing in the response
// says which it was.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authapi.AuthResponse{
			Status: false,
			Msg:    "Invalid request body",
		})
		return
	}

	if req.Username == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, authapi.AuthResponse{
			Status: false,
			Msg:    "Username is required",
		})
		return
	}
	if req.Password == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, authapi.AuthResponse{
			Status: false,
			Msg:    "Password is required",
		})
		return
	}

	session, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusBadRequest, authapi.AuthResponse{
				Status: false,
				Msg:    "Invalid credentials",
			})
			return
		}
		log.Error("login failed", "err", err)
		writeServerError(w)
		return
	}

	user := toUserSummary(session.User)
	httpx.WriteJSON(w, http.StatusOK, authapi.AuthResponse{
		Status: true,
		User:   &user,
		Token:  session.Token,
	})
}
