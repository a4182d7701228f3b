package http

import (
	"net/http"
	"time"

	"github.com/varunai/backend/pkg/authapi"
	"github.com/varunai/backend/pkg/httpx"
)

// HealthHandler is the liveness probe the chat client hits before showing the
// login form. It reports reachability, not auth state, and always answers 200
// while the process is up.
func HealthHandler(serviceName, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, authapi.HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC(),
			Service:   serviceName,
			Version:   version,
		})
	}
}
