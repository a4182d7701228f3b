package http

import (
	"errors"
	"net/http"

	"github.com/varunai/backend/internal/auth/domain"
	"github.com/varunai/backend/internal/auth/service"
	"github.com/varunai/backend/pkg/authapi"
	"github.com/varunai/backend/pkg/httpx"
	"github.com/varunai/backend/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /auth/register. Validation failures surface the
// specific rule's message; a duplicate identity gets one combined message that
// never says whether the username or the email collided.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authapi.AuthResponse{
			Status: false,
			Msg:    "Invalid request body",
		})
		return
	}

	// The web client compares the two password fields itself and sends only
	// one. An absent confirmation therefore means "same as password"; a
	// present one must match.
	confirm := req.ConfirmPassword
	if confirm == "" {
		confirm = req.Password
	}

	session, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password, confirm)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			httpx.WriteJSON(w, http.StatusBadRequest, authapi.AuthResponse{
				Status: false,
				Msg:    vErr.Msg,
			})
		case errors.Is(err, service.ErrIdentityExists):
			httpx.WriteJSON(w, http.StatusBadRequest, authapi.AuthResponse{
				Status: false,
				Msg:    "User already exists with this username or email",
			})
		default:
			log.Error("registration failed", "err", err)
			writeServerError(w)
		}
		return
	}

	user := toUserSummary(session.User)
	httpx.WriteJSON(w, http.StatusCreated, authapi.AuthResponse{
		Status: true,
		Msg:    "Registration successful",
		User:   &user,
		Token:  session.Token,
	})
}

func toUserSummary(s domain.Summary) authapi.UserSummary {
	return authapi.UserSummary{
		ID:       s.ID,
		Username: s.Username,
		Email:    s.Email,
		Avatar:   s.Avatar,
	}
}

func writeServerError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusInternalServerError, authapi.AuthResponse{
		Status: false,
		Msg:    "Server error",
	})
}
