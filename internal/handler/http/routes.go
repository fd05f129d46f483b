package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-uaa/models"
)

// loginParam accepts the same characters as a valid login.
const loginParam = "{login:[_'.@A-Za-z0-9-]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.InstrumentHandler)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/management/prometheus", h.metrics.Handler())
		r.Post("/api/authenticate", h.authenticate)
	})

	router.With(h.auth).Get("/api/account", h.getAccount)

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/exist/login/{login}", h.existsByLogin)
		r.Get("/exist/email/{email}", h.existsByEmail)
		r.Get("/exist/phone/{phone}", h.existsByPhone)

		r.With(h.optionalAuth).Get("/"+loginParam, h.getUser)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.requireAuthority(models.RoleAdmin))

			r.Post("/", h.createUser)
			r.Put("/", h.updateUser)
			r.Get("/", h.listUsers)
			r.Delete("/"+loginParam, h.deleteUser)

			r.Get("/authorities", h.getAuthorities)
			r.Post("/authorities/{authority}", h.createAuthority)
			r.Delete("/authorities/{authority}", h.deleteAuthority)
		})
	})

	router.Route("/api/solutions", func(r chi.Router) {
		r.Get("/", h.listSolutions)
		r.Get("/{id:[0-9]+}", h.getSolution)
		r.Get("/uuid/{uuid}", h.getSolutionByUUID)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/", h.createSolution)
			r.Put("/", h.updateSolution)
			r.Put("/composite", h.updateCompositeSolution)
			r.Delete("/{id:[0-9]+}", h.deleteSolution)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
