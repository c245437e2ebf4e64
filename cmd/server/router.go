package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"posts-api/internal/api"
	apiMiddleware "posts-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Reads are public; every mutating endpoint sits behind the
// bearer-token middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(
		app.jwtService,
		app.passwordVerifier,
		&app.config.Auth,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	userHandler := api.NewUserHandler(app.userStore, app.postStore, app.logger)
	postHandler := api.NewPostHandler(app.postStore, app.userStore, app.logger)
	rootHandler := api.NewRootHandler("README.md", app.logger)

	// Public routes
	r.Get("/", rootHandler.Root)
	r.Post("/token", authHandler.IssueToken)

	r.Get("/users", userHandler.List)
	r.Get("/users/{id}", userHandler.Get)
	r.Get("/posts", postHandler.List)
	r.Get("/posts/{id}", postHandler.Get)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/users", userHandler.Create)
		r.Put("/users/{id}", userHandler.Update)
		r.Delete("/users/{id}", userHandler.Delete)

		r.Post("/posts", postHandler.Create)
		r.Put("/posts/{id}", postHandler.Update)
		r.Delete("/posts/{id}", postHandler.Delete)
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
