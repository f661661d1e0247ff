package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edgecore/api-gateway/internal/api/handler"
	"github.com/edgecore/api-gateway/internal/api/middleware"
	"github.com/edgecore/api-gateway/internal/core/domain"
	"github.com/edgecore/api-gateway/internal/core/ports"
	"github.com/edgecore/api-gateway/internal/infrastructure/config"
)

// Deps carries everything the router wires together. Mongo, Redis, and the
// login limiter may be nil in reduced deployments and in tests.
type Deps struct {
	AuthService  ports.AuthService
	ErrorLog     ports.ErrorLogStore
	Forwarder    handler.Forwarder
	LoginLimiter middleware.Limiter
	Mongo        *mongo.Database
	Redis        *redis.Client
	Log          zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
//
// Per-request control flow: route match → auth gate where required →
// local handler or backend dispatch → every response passes the error-log
// recorder on the way out.
func NewRouter(cfg *config.Config, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	// The error-log recorder is the outermost layer so auth rejections,
	// synthetic 404s, proxy 502s, and panics are all captured uniformly.
	e.Use(middleware.ErrorLog(deps.ErrorLog, deps.Log))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("gateway"))
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:    cfg.FrontendDir,
		HTML5:   true,
		Skipper: skipStatic,
	}))

	// --- Dependencies ---
	table := routeTable(cfg)

	authHandler := handler.NewAuthHandler(deps.AuthService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
	navigationHandler := handler.NewNavigationHandler()
	errorLogHandler := handler.NewErrorLogHandler(deps.ErrorLog)
	proxyHandler := handler.NewProxyHandler(deps.Forwarder, table)

	auth := middleware.Auth(deps.AuthService)

	// --- Health probes (never authenticated, precede every catch-all) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/live", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	var loginMW []echo.MiddlewareFunc
	if deps.LoginLimiter != nil {
		loginMW = append(loginMW, middleware.LoginRateLimit(deps.LoginLimiter, deps.Log))
	}
	e.POST("/api/auth/login", authHandler.Login, loginMW...)
	e.GET("/api/auth/me", authHandler.Me, auth)
	e.POST("/api/auth/refresh", authHandler.Refresh, auth)

	// --- Local API surface ---
	e.GET("/api/navigation", navigationHandler.List)
	e.GET("/api/logs/errors", errorLogHandler.List)
	e.DELETE("/api/logs/errors", errorLogHandler.Clear)

	// --- Proxy routes, driven by the static dispatch table ---
	for _, entry := range table.Entries() {
		switch entry.Kind {
		case domain.RouteAuthProxy:
			mw := []echo.MiddlewareFunc{auth}
			if len(entry.RequiredRoles) > 0 {
				mw = append(mw, middleware.RBAC(entry.RequiredRoles...))
			}
			e.Any(entry.Prefix, proxyHandler.Dispatch, mw...)
			e.Any(entry.Prefix+"/*", proxyHandler.Dispatch, mw...)
		case domain.RouteOpenProxy:
			e.Any(entry.Prefix, proxyHandler.Dispatch)
			e.Any(entry.Prefix+"/*", proxyHandler.Dispatch)
		}
	}

	// --- Synthetic 404 for everything else under /api, any method, any depth ---
	e.Any("/api/*", apiNotFound)

	return e
}

// apiNotFound is the catch-all for the /api namespace. The central error
// handler renders it as
// {"error":{"code":"NOT_FOUND","message":"API endpoint not found","path":<request path>}}.
func apiNotFound(c echo.Context) error {
	return echo.NewHTTPError(http.StatusNotFound, "API endpoint not found")
}

// skipStatic keeps the frontend file server out of the API, health, metrics,
// and passthrough namespaces; those either match a route or produce the JSON
// 404, never an HTML page.
func skipStatic(c echo.Context) bool {
	p := c.Request().URL.Path
	return strings.HasPrefix(p, "/api") ||
		strings.HasPrefix(p, "/health") ||
		strings.HasPrefix(p, "/metrics") ||
		strings.HasPrefix(p, "/v2")
}

// routeTable builds the static dispatch table from configuration. Entries
// are read-only after startup; health entries always match first.
func routeTable(cfg *config.Config) *domain.RouteTable {
	entries := []domain.RouteEntry{
		{Name: "health", Prefix: "/health", Kind: domain.RouteHealth},
		{Name: "catchall", Prefix: "/api", Kind: domain.RouteCatchAll},
		{Name: "inference", Prefix: "/v2", Kind: domain.RouteOpenProxy, Target: cfg.Proxy.InferenceTarget},
		{Name: "inference", Prefix: "/api/generate", Kind: domain.RouteOpenProxy, Target: cfg.Proxy.InferenceTarget},
		{Name: "inference", Prefix: "/api/chat", Kind: domain.RouteOpenProxy, Target: cfg.Proxy.InferenceTarget},
		{Name: "inference", Prefix: "/api/embeddings", Kind: domain.RouteOpenProxy, Target: cfg.Proxy.InferenceTarget},
	}
	for name, target := range cfg.Proxy.ServiceTargets {
		entry := domain.RouteEntry{
			Name:   name,
			Prefix: "/api/v1/" + name,
			Kind:   domain.RouteAuthProxy,
			Target: target,
		}
		if name == "admin" {
			entry.RequiredRoles = []string{domain.RoleAdmin}
		}
		entries = append(entries, entry)
	}
	return domain.NewRouteTable(entries)
}
