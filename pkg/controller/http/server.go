package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rebutly/rebutly/pkg/usecase"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(corsMiddleware)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", rootHandler)

		r.Route("/objections", func(r chi.Router) {
			r.Get("/", listObjectionsHandler(uc.Objection))
			r.Post("/", createObjectionHandler(uc.Objection))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getObjectionHandler(uc.Objection))
				r.Put("/", updateObjectionHandler(uc.Objection))
				r.Delete("/", deleteObjectionHandler(uc.Objection))
				r.Post("/toggle-favorite", toggleFavoriteHandler(uc.Objection))
				r.Post("/increment-usage", incrementUsageHandler(uc.Objection))
			})
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", listQuotesHandler(uc.Quote))
			r.Post("/", createQuoteHandler(uc.Quote))
		})

		r.Get("/search", searchHandler(uc.Search))
		r.Post("/initialize-data", initializeDataHandler(uc.Seed))

		r.Route("/status", func(r chi.Router) {
			r.Get("/", listStatusHandler(uc.Status))
			r.Post("/", createStatusHandler(uc.Status))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{"message": "Hello World"})
}
