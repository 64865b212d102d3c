package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/academyhq/academy-console/handlers"
	"github.com/academyhq/academy-console/middleware"
	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/session"
)

func SetupRoutes(
	router *chi.Mux,
	store *session.Store,
	authHandler *handlers.AuthHandler,
	playerHandler *handlers.PlayerHandler,
	registrationHandler *handlers.RegistrationHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	uniformHandler *handlers.UniformHandler,
	coachHandler *handlers.CoachHandler,
	dashboardHandler *handlers.DashboardHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(store))

		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/session", authHandler.Session)
		r.Get("/notifications", notificationHandler.Drain)

		// Subscriptions are the one area coaches work in themselves.
		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", subscriptionHandler.List)
			r.Post("/", subscriptionHandler.Create)
			r.Put("/{id}", subscriptionHandler.Update)
			r.Delete("/{id}", subscriptionHandler.Delete)
		})

		// Everything else is admin-only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))

			r.Get("/dashboard", dashboardHandler.Summary)

			r.Route("/players", func(r chi.Router) {
				r.Get("/", playerHandler.List)
				r.Post("/", playerHandler.Create)
				r.Post("/refresh", playerHandler.Refresh)
				r.Put("/{id}", playerHandler.Update)
				r.Delete("/{id}", playerHandler.Delete)
			})

			r.Route("/registrations", func(r chi.Router) {
				r.Get("/", registrationHandler.List)
				r.Post("/", registrationHandler.Create)
				r.Put("/{id}", registrationHandler.Update)
				r.Delete("/{id}", registrationHandler.Delete)
			})

			r.Route("/uniforms", func(r chi.Router) {
				r.Get("/", uniformHandler.List)
				r.Post("/", uniformHandler.Create)
				r.Put("/{id}", uniformHandler.Update)
				r.Delete("/{id}", uniformHandler.Delete)
			})

			r.Route("/coaches", func(r chi.Router) {
				r.Get("/", coachHandler.List)
				r.Post("/", coachHandler.Create)
				r.Put("/{id}", coachHandler.Update)
				r.Delete("/{id}", coachHandler.Delete)
			})
		})
	})
}
