package http

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/assets"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// DefaultAllowedOrigins are the origins allowed to make credentialed cross-origin requests
var DefaultAllowedOrigins = []string{
	"https://f3a-pattern-aerobatics-rc.club",
	"http://localhost:3000",
}

const (
	defaultAddr = "0.0.0.0:3000"

	// maxJSONBody matches the 100kb default of common JSON body parsers
	maxJSONBody = 100 << 10
)

// config holds internal HTTP server configuration
type config struct {
	addr           string
	allowedOrigins []string
	staticFS       fs.FS
	now            func() time.Time
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithAllowedOrigins replaces the CORS allow-list
func WithAllowedOrigins(origins ...string) Option {
	return func(c *config) {
		c.allowedOrigins = origins
	}
}

// WithStaticFS sets the file system served for paths no route matches
func WithStaticFS(fsys fs.FS) Option {
	return func(c *config) {
		c.staticFS = fsys
	}
}

// WithClock sets the clock used for error envelope timestamps
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	clubUC interfaces.ClubUseCase,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr:           defaultAddr,
		allowedOrigins: DefaultAllowedOrigins,
		staticFS:       assets.Public(),
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	failure := &failureWriter{now: cfg.now}
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(SecurityHeaders())
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.Use(middleware.Compress(5))
	router.Use(failure.Recoverer)
	router.Use(JSONBody(maxJSONBody, failure))
	router.Use(middleware.GetHead)

	// Unmatched paths and methods fall through to the static assets
	static := newStaticHandler(cfg.staticFS)
	router.NotFound(static.ServeHTTP)
	router.MethodNotAllowed(static.ServeHTTP)

	router.Get("/health", handleHealth(clubUC))

	clubHandler := NewClubHandler(clubUC, failure)
	router.Route("/api", func(r chi.Router) {
		r.Get("/club", clubHandler.Club)
		r.Get("/events", clubHandler.Events)
		r.Get("/aircraft", clubHandler.Aircraft)
	})

	router.Get("/openapi.yaml", handleOpenAPI)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
