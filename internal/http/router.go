// Package http wires the REST surface: routing, authentication, request
// timing, and JSON error mapping. All business rules live in the domain
// packages; handlers are glue.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups the per-resource handlers the router mounts.
type Handlers struct {
	Users        UserRoutes
	Accounts     Routable
	Transactions Routable
}

// Routable mounts a resource's endpoints on a sub-router.
type Routable interface {
	Routes(r chi.Router)
}

// UserRoutes additionally exposes the unauthenticated registration and login
// endpoints.
type UserRoutes interface {
	Routable
	PublicRoutes(r chi.Router)
}

func New(verifier TokenVerifier, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(Timed)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Users.PublicRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(Authenticator(verifier))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Users.Routes(r)
			})

			r.Route("/accounts", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Accounts.Routes(r)

				r.Route("/{accountNumber}/transactions", func(r chi.Router) {
					h.Transactions.Routes(r)
				})
			})
		})
	})

	return router
}
