// Package router sets up the HTTP routes and middleware chains for the
// tienda API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"tienda/internal/handlers"
	"tienda/internal/middleware"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Products   *handlers.Products
	Categories *handlers.Categories
	Users      *handlers.Users

	// UploadDir is served read-only under /uploads/.
	UploadDir string

	// JWTSecret validates bearer tokens on protected routes.
	JWTSecret string

	// Redis throttles the login endpoint; nil disables throttling.
	Redis *redis.Client
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/productos", func(r chi.Router) {
			r.Get("/", d.Products.List)
			r.Post("/", d.Products.Create)
			r.Get("/categoria/{categoria_id}", d.Products.ListByCategory)
			r.Get("/{id}", d.Products.Get)
			r.Put("/{id}", d.Products.Update)
			r.Delete("/{id}", d.Products.Delete)
		})

		r.Route("/categorias", func(r chi.Router) {
			r.Get("/", d.Categories.List)
			r.Post("/", d.Categories.Create)
			r.Get("/{id}", d.Categories.Get)
			r.Put("/{id}", d.Categories.Update)
			r.Delete("/{id}", d.Categories.Delete)
		})

		r.Route("/usuarios", func(r chi.Router) {
			r.Post("/", d.Users.Register)
			r.With(middleware.LoginThrottle(d.Redis)).Post("/login", d.Users.Login)
			r.With(middleware.RequireAuth(d.JWTSecret)).Get("/me", d.Users.Me)
		})
	})

	// Uploaded product images, served as static files.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
