package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/passport/internal/accounts/domain"
	"github.com/aussiebroadwan/passport/internal/accounts/service"
	"github.com/aussiebroadwan/passport/internal/accounts/store"
	"github.com/aussiebroadwan/passport/pkg/accountsdk"
	"github.com/aussiebroadwan/passport/pkg/httpx"
	"github.com/aussiebroadwan/passport/pkg/jwtx"
	"github.com/aussiebroadwan/passport/pkg/slogx"

	_ "github.com/aussiebroadwan/passport/api/accounts" // Swagger docs
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits groups the limiter profiles used by the routes.
type RateLimits struct {
	Credentials   httpx.RateLimitConfig // register, login; per IP
	Authenticated httpx.RateLimitConfig // account routes; per user
	Public        httpx.RateLimitConfig // health, metrics and docs; per IP
}

// DefaultRateLimits returns the package defaults from httpx.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Credentials:   httpx.StrictLimit,
		Authenticated: httpx.ModerateLimit,
		Public:        httpx.PublicLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *httpx.Metrics

	store          store.Store
	AccountService *service.AccountService

	// AllowedOrigins feeds CORS. "*" allows any origin without credentials.
	AllowedOrigins []string
	RateLimits     RateLimits

	// TrustedProxies may report the client address in forwarding headers.
	// Empty means rate limits key on the TCP peer only.
	TrustedProxies httpx.TrustedProxies
	clientIP       httpx.KeyExtractor
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		metrics:      httpx.NewMetrics("passport"),
		store:        st,
		RateLimits:   DefaultRateLimits(),
	}
}

func (r *Router) ApplyRoutes() {
	r.clientIP = r.TrustedProxies.KeyExtractor()
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		middleware.Recoverer,
		r.cors().Handler,
	}

	r.registerAccounts()
	r.registerUser()
	r.registerFavorites()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Passport Account Service API
//	@version		0.1.0
//	@description	User accounts for the country explorer: registration, login, profile management and a per-user list of favorite countries.
//	@description
//	@description				Sessions are HS256-signed JWTs valid for one hour. There is no refresh; log in again after expiry.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/passport
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8090
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from /api/auth/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) cors() *cors.Cors {
	origins := r.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	wildcard := len(origins) == 1 && origins[0] == "*"

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", slogx.RequestIDHeader},
		ExposedHeaders:   []string{slogx.RequestIDHeader, "Retry-After"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}

// handle registers pattern with per-route metrics in front of mws.
func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	route := pattern
	if _, path, ok := strings.Cut(pattern, " "); ok {
		route = path
	}
	chain := append([]httpx.Middleware{r.metrics.Instrument(route)}, mws...)
	r.Mux.Handle(pattern, httpx.Chain(h, chain...))
}

// secured is the gate for every account route: a valid session carrying the
// user role, then a per-user rate limit.
func (r *Router) secured() []httpx.Middleware {
	return []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(domain.RoleUser.String()),
		httpx.RateLimitByUser(r.RateLimits.Authenticated, r.clientIP),
	}
}

func (r *Router) registerAccounts() {
	h := &AccountHandler{AccountService: r.AccountService}

	// Credential endpoints share one strict per-IP budget.
	limit := httpx.RateLimitByIP(r.RateLimits.Credentials, r.clientIP)

	r.handle("POST /api/auth/register", http.HandlerFunc(h.Register), limit)
	r.handle("POST /api/auth/login", http.HandlerFunc(h.Login), limit)
}

func (r *Router) registerUser() {
	h := &UserHandler{AccountService: r.AccountService}

	r.handle("GET /api/auth/user", http.HandlerFunc(h.Get), r.secured()...)
	r.handle("PUT /api/auth/update/user", http.HandlerFunc(h.Update), r.secured()...)
	r.handle("DELETE /api/auth/delete/user", http.HandlerFunc(h.Delete), r.secured()...)
}

func (r *Router) registerFavorites() {
	h := &FavoritesHandler{AccountService: r.AccountService}

	r.handle("PUT /api/auth/add/favorites", http.HandlerFunc(h.Add), r.secured()...)
	r.handle("GET /api/auth/favorites", http.HandlerFunc(h.List), r.secured()...)
	r.handle("DELETE /api/auth/remove/favorites", http.HandlerFunc(h.Remove), r.secured()...)
}

func (r *Router) registerSystem() {
	public := httpx.RateLimitByIP(r.RateLimits.Public, r.clientIP)

	r.handle("GET /livez", LivezHandler(r.startTime, r.buildVersion), public)
	r.handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store), public)
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	r.Mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		accountsdk.NewAPIError(http.StatusNotFound, "Not found").WriteError(w)
	})
}
