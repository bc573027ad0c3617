// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/consumo/internal/access"
	"github.com/taibuivan/consumo/internal/blog"
	"github.com/taibuivan/consumo/internal/forum"
	"github.com/taibuivan/consumo/internal/platform/config"
	"github.com/taibuivan/consumo/internal/platform/constants"
	"github.com/taibuivan/consumo/internal/platform/gate"
	"github.com/taibuivan/consumo/internal/platform/middleware"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/internal/product"
	"github.com/taibuivan/consumo/internal/request"
	"github.com/taibuivan/consumo/internal/user"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// User handles accounts: registration, login, profile, blocking.
	User *user.Handler

	// Product handles the catalogue with its regions and contents.
	Product *product.Handler

	// Blog handles editorial articles, comments, and likes.
	Blog *blog.Handler

	// Request handles the community suggestion queues.
	Request *request.Handler

	// Forum handles regional boards and their threads.
	Forum *forum.Handler

	// Access serves the resource-access audit trail.
	Access *access.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The access recorder runs for every inbound
// request, ahead of the middleware that can reject one.
func NewServer(
	context context.Context,
	cfg *config.Config,
	log *slog.Logger,
	verifier middleware.TokenVerifier,
	accessGate *gate.Gate,
	recorder *access.Recorder,
	h Handlers,
) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	// Audit before rate limiting and authentication: rejected requests
	// still leave a row, with identity parsed best-effort from the token.
	r.Use(access.Middleware(recorder, verifier))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/users", func(r chi.Router) {
			// Static segment, so it wins over the /{id} wildcards below.
			r.With(accessGate.Require(sec.ActionViewAudit)).Get("/accesses", h.Access.List)
			h.User.RegisterRoutes(r)
		})
		api.Route("/products", h.Product.RegisterRoutes)
		api.Route("/blogs", h.Blog.RegisterRoutes)
		api.Route("/requests", h.Request.RegisterRoutes)
		api.Route("/forums", h.Forum.RegisterForumRoutes)
		api.Route("/threads", h.Forum.RegisterThreadRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
