/*
server.go - HTTP router configuration

PURPOSE:
  Wires handlers to routes and stacks the middleware: structured request
  logging, CORS for browser clients, panic recovery, and a heartbeat.

API STRUCTURE:
  /api
    /establishments          CRUD + nested employees + roll-up summary
    /employees               CRUD + violations document + summary + report
    /wage-orders             Reference timeline
    /holidays                Reference calendar
    /classify                Day-count suggestion
    /scenarios               Demo datasets

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// NewLogger builds the shared request logger. Logs are JSON on stdout in
// the ECS schema so they feed straight into log shippers.
func NewLogger(env string, level slog.Level) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(env == "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wagecalc"),
		slog.String("env", env),
	)
}

// NewRouter configures all routes and middleware.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.CleanPath)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/establishments", func(r chi.Router) {
			r.Get("/", h.ListEstablishments)
			r.Post("/", h.CreateEstablishment)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetEstablishment)
				r.Put("/", h.UpdateEstablishment)
				r.Delete("/", h.DeleteEstablishment)
				r.Get("/employees", h.ListEmployees)
				r.Post("/employees", h.CreateEmployee)
				r.Get("/summary", h.GetEstablishmentSummary)
			})
		})

		r.Route("/employees/{id}", func(r chi.Router) {
			r.Get("/", h.GetEmployee)
			r.Put("/", h.UpdateEmployee)
			r.Delete("/", h.DeleteEmployee)
			r.Get("/violations", h.GetViolations)
			r.Put("/violations", h.PutViolations)
			r.Get("/summary", h.GetSummary)
			r.Get("/report", h.GetReport)
		})

		r.Route("/wage-orders", func(r chi.Router) {
			r.Get("/", h.ListWageOrders)
			r.Post("/", h.CreateWageOrder)
			r.Delete("/{id}", h.DeleteWageOrder)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.ListHolidays)
			r.Post("/", h.CreateHoliday)
			r.Delete("/{id}", h.DeleteHoliday)
		})

		r.Post("/classify", h.Classify)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	return r
}
