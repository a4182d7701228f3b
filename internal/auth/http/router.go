package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/varunai/backend/internal/auth/service"
	"github.com/varunai/backend/pkg/httpx"
	"github.com/varunai/backend/pkg/jwtx"
	"github.com/varunai/backend/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier       jwtx.Verifier
	basePath       string
	serviceName    string
	buildVersion   string
	requestTimeout time.Duration
	logger         *slog.Logger

	AuthService *service.AuthService
	UserService *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	basePath, serviceName, buildVersion string,
	requestTimeout time.Duration,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		verifier:       verifier,
		basePath:       normalizeBasePath(basePath),
		serviceName:    serviceName,
		buildVersion:   buildVersion,
		requestTimeout: requestTimeout,
		logger:         logger,
	}

	// Default middleware chain: request logging outermost, then the
	// per-request deadline every handler inherits.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.TimeoutMiddleware(r.requestTimeout),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{AuthService: r.AuthService}
	register := &RegisterHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST "+r.basePath+"/auth/login", login)
	r.Mux.Handle("POST "+r.basePath+"/auth/register", register)

	// Everything below needs a verified session token.
	avatar := &SetAvatarHandler{UserService: r.UserService}
	users := &AllUsersHandler{UserService: r.UserService}

	r.Mux.Handle("POST "+r.basePath+"/auth/setavatar",
		httpx.Chain(avatar, httpx.AuthnMiddleware(r.verifier)),
	)
	r.Mux.Handle("GET "+r.basePath+"/auth/allusers",
		httpx.Chain(users, httpx.AuthnMiddleware(r.verifier)),
	)
	r.Mux.Handle("POST "+r.basePath+"/auth/logout",
		httpx.Chain(http.HandlerFunc(LogoutHandler), httpx.AuthnMiddleware(r.verifier)),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET "+r.basePath+"/health",
		HealthHandler(r.serviceName, r.buildVersion),
	)
}

func normalizeBasePath(p string) string {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
