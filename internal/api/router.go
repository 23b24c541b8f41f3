package api

import (
	"encoding/json"
	"net/http"

	"github.com/dreed/taskhub/internal/api/handlers"
	"github.com/dreed/taskhub/internal/api/middleware"
	"github.com/dreed/taskhub/internal/auth"
	"github.com/dreed/taskhub/internal/config"
	"github.com/dreed/taskhub/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(services *service.Services, tokens *auth.TokenService, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Todo API is running"})
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	taskHandler := handlers.NewTaskHandler(services.Task)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Task routes: bearer token required, ownership checked per request
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))

			r.Route("/{userID}/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Get("/{taskID}", taskHandler.Get)
				r.Put("/{taskID}", taskHandler.Update)
				r.Delete("/{taskID}", taskHandler.Delete)
				r.Patch("/{taskID}/complete", taskHandler.ToggleComplete)
			})
		})
	})

	return r
}
