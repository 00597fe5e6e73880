package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/miniblog-dev/miniblog/internal/middleware/metrics"
	"github.com/miniblog-dev/miniblog/internal/setup"
)

// New creates and configures the chi router with all routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Auth
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		// Public reads
		r.Get("/posts", h.GetPosts)
		r.Get("/posts/{post}", h.GetPost)
		r.Get("/posts/{post}/comments", h.GetComments)
		r.Get("/categories", h.GetCategories)

		// Everything below needs a valid token; role and ownership rules are
		// enforced by the policy inside each service, not by the router.
		r.Group(func(r chi.Router) {
			r.Use(needAuth)

			r.Post("/posts", h.CreatePost)
			r.Put("/posts/{post}", h.UpdatePost)
			r.Delete("/posts/{post}", h.DeletePost)

			r.Post("/posts/{post}/comments", h.CreateComment)
			r.Put("/comments/{comment}", h.UpdateComment)
			r.Delete("/comments/{comment}", h.DeleteComment)

			r.Post("/categories", h.CreateCategory)
			r.Put("/categories/{category}", h.UpdateCategory)
			r.Delete("/categories/{category}", h.DeleteCategory)

			r.Get("/users", h.GetUsers)
			r.Get("/users/me", h.GetMe)
			r.Get("/users/{user}", h.GetUser)
			r.Delete("/users/{user}", h.DeactivateUser)
			r.Patch("/users/{user}/role", h.UpdateUserRole)

			r.Get("/stats", h.GetStats)
		})
	})

	return r
}
