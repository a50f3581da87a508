package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frizen94/ERPRO/internal/absence"
	"github.com/frizen94/ERPRO/internal/auth"
	"github.com/frizen94/ERPRO/internal/dashboard"
	"github.com/frizen94/ERPRO/internal/functional"
	"github.com/frizen94/ERPRO/internal/lookup"
	"github.com/frizen94/ERPRO/internal/perdiem"
	"github.com/frizen94/ERPRO/internal/person"
	"github.com/frizen94/ERPRO/internal/report"
	"github.com/frizen94/ERPRO/internal/shift"
	"github.com/frizen94/ERPRO/internal/transport/middleware"
	"github.com/frizen94/ERPRO/internal/transport/swagger"
	"github.com/frizen94/ERPRO/internal/weapon"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles every route handler the server mounts.
type Handlers struct {
	Auth       *auth.Handler
	Person     *person.Handler
	Functional *functional.Handler
	Absence    *absence.Handler
	Shift      *shift.Handler
	PerDiem    *perdiem.Handler
	Weapon     *weapon.Handler
	Lookup     *lookup.Handler
	Dashboard  *dashboard.Handler
	Report     *report.Handler
}

// RegisterAllRoutes mounts the full API surface: open health and auth
// routes, then every business route family behind the bearer-token
// middleware. Lookup mutations additionally require the admin flag.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))

	// OpenAPI document and swagger UI live outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.Middleware)

			pr.Route("/persons", func(er chi.Router) {
				er.Get("/", h.Person.List)
				er.Post("/", h.Person.Create)
				er.Get("/{id}", h.Person.Get)
				er.Put("/{id}", h.Person.Update)
				er.Delete("/{id}", h.Person.Delete)
				er.Get("/{personId}/functional-record", h.Functional.GetByPerson)
			})

			pr.Route("/functional-records", func(er chi.Router) {
				er.Get("/", h.Functional.List)
				er.Post("/", h.Functional.Create)
				er.Get("/{id}", h.Functional.Get)
				er.Put("/{id}", h.Functional.Update)
				er.Delete("/{id}", h.Functional.Delete)
			})

			pr.Route("/absences", func(er chi.Router) {
				er.Get("/", h.Absence.List)
				er.Post("/", h.Absence.Create)
				er.Get("/{id}", h.Absence.Get)
				er.Put("/{id}", h.Absence.Update)
				er.Delete("/{id}", h.Absence.Delete)
			})

			pr.Route("/shift-schedules", func(er chi.Router) {
				er.Get("/", h.Shift.List)
				er.Post("/", h.Shift.Create)
				er.Get("/{id}", h.Shift.Get)
				er.Put("/{id}", h.Shift.Update)
				er.Delete("/{id}", h.Shift.Delete)
			})

			pr.Route("/per-diem-requests", func(er chi.Router) {
				er.Get("/", h.PerDiem.List)
				er.Post("/", h.PerDiem.Create)
				er.Get("/{id}", h.PerDiem.Get)
				er.Put("/{id}", h.PerDiem.Update)
				er.Delete("/{id}", h.PerDiem.Delete)
			})

			pr.Route("/weapons", func(er chi.Router) {
				er.Get("/", h.Weapon.List)
				er.Post("/", h.Weapon.Create)
				er.Get("/{id}", h.Weapon.Get)
				er.Put("/{id}", h.Weapon.Update)
				er.Delete("/{id}", h.Weapon.Delete)
				er.Post("/{id}/checkout", h.Weapon.Checkout)
			})

			pr.Route("/weapon-checkouts", func(er chi.Router) {
				er.Get("/", h.Weapon.ListCheckoutRecords)
				er.Post("/{id}/return", h.Weapon.Return)
			})

			h.Lookup.Register(pr, h.Auth.RequireAdmin)

			pr.Route("/dashboard", func(er chi.Router) {
				er.Get("/stats", h.Dashboard.Stats)
				er.Get("/activities", h.Dashboard.Activities)
			})

			pr.Route("/reports", func(er chi.Router) {
				er.Get("/persons.xlsx", h.Report.PersonsRoster)
				er.Get("/shift-schedules.xlsx", h.Report.ShiftSchedules)
			})
		})
	})
}
