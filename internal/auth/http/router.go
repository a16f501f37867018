package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lanternchat/lantern/internal/auth/service"
	"github.com/lanternchat/lantern/internal/auth/session"
	"github.com/lanternchat/lantern/internal/auth/store"
	"github.com/lanternchat/lantern/pkg/httpx"
	"github.com/lanternchat/lantern/pkg/jwtx"
	"github.com/lanternchat/lantern/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *jwtx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	sessions session.Store

	AuthService *service.AuthService
}

func NewRouter(
	codec *jwtx.Codec,
	buildVersion string,
	st store.Store,
	sessions session.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		sessions:     sessions,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
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
	// POST /register - strict rate limit by IP (account creation)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (password guessing)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /refresh - bearer refresh credential only. An access token
	// can never reach the rotation path.
	refreshHandler := &RefreshHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.AuthnMiddleware(r.codec, jwtx.KindRefresh),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /logout - bearer access credential
	logoutHandler := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.AuthnMiddleware(r.codec, jwtx.KindAccess),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /info - bearer access credential
	infoHandler := &UserInfoHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /v1/auth/info",
		httpx.Chain(infoHandler,
			httpx.AuthnMiddleware(r.codec, jwtx.KindAccess),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient limits, monitors poll these
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.sessions),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
