package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/esophai/internal/handlers"
	"github.com/sbilibin2017/esophai/internal/middlewares"
	"github.com/sbilibin2017/esophai/internal/session"
)

// AuthService handles both account flows.
type AuthService interface {
	handlers.Loginer
	handlers.Registerer
}

// Config selects the variant and its limits.
type Config struct {
	MultiUser       bool
	UploadMaxBytes  int64
	LoginRateLimit  int
	LoginRateWindow time.Duration
	SwaggerURL      string // doc.json location; empty serves the default
}

// Deps are the components the routes are built from.
// Auth, Dashboard and Redis are only used by the multi-user variant; Redis may be nil.
type Deps struct {
	DB        handlers.Pinger
	Sessions  *session.Manager
	Renderer  handlers.PageRenderer
	Analyzer  handlers.Analyzer
	Files     handlers.FileOpener
	Auth      AuthService
	Dashboard handlers.DashboardGetter
	Redis     *redis.Client
}

// New assembles the HTTP routes of the selected variant.
func New(cfg Config, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/healthz", handlers.NewHealthzHandler(deps.DB))

	swaggerURL := cfg.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = "/swagger/doc.json"
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Get("/upload/{filename}", handlers.NewUploadedFileHandler(deps.Files))

	uploadHandler := handlers.NewUploadHandler(deps.Analyzer, deps.Sessions, deps.Renderer, cfg.MultiUser, cfg.UploadMaxBytes)

	if !cfg.MultiUser {
		r.Get("/", handlers.NewAnalyzePageHandler(deps.Sessions, deps.Renderer, false))
		r.Post("/upload_file", uploadHandler)
		return r
	}

	r.Get("/", handlers.NewHomeHandler(deps.Sessions))

	r.Get("/login", handlers.NewLoginPageHandler(deps.Sessions, deps.Renderer))
	r.With(middlewares.RateLimitMiddleware(deps.Redis, cfg.LoginRateLimit, cfg.LoginRateWindow)).
		Post("/login", handlers.NewLoginHandler(deps.Auth, deps.Sessions))
	r.Get("/register", handlers.NewRegisterPageHandler(deps.Sessions, deps.Renderer))
	r.Post("/register", handlers.NewRegisterHandler(deps.Auth, deps.Sessions))
	r.Get("/logout", handlers.NewLogoutHandler(deps.Sessions))

	r.With(middlewares.AuthMiddleware(deps.Sessions, "Please log in to access the dashboard")).
		Get("/dashboard", handlers.NewDashboardHandler(deps.Dashboard, deps.Sessions, deps.Renderer))
	r.With(middlewares.AuthMiddleware(deps.Sessions, "Please log in to access analysis")).
		Get("/analyze", handlers.NewAnalyzePageHandler(deps.Sessions, deps.Renderer, true))
	r.With(middlewares.AuthMiddleware(deps.Sessions, "Please log in to upload files")).
		Post("/upload_file", uploadHandler)

	return r
}
