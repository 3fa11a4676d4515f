package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/salesdesk/crm-portal/internal/activity"
	"github.com/salesdesk/crm-portal/internal/auth"
	"github.com/salesdesk/crm-portal/internal/customer"
	"github.com/salesdesk/crm-portal/internal/dashboard"
	"github.com/salesdesk/crm-portal/internal/order"
	"github.com/salesdesk/crm-portal/internal/target"
	"github.com/salesdesk/crm-portal/internal/transport/middleware"
	"github.com/salesdesk/crm-portal/internal/transport/swagger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Customer  *customer.Handler
	Order     *order.Handler
	Activity  *activity.Handler
	Target    *target.Handler
	Dashboard *dashboard.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec and swagger UI at root, outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Protected CRM tree; a 401 from the middleware is the session-invalid
		// signal portal clients react to.
		r.Route("/crm", func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Route("/sales-team", func(tr chi.Router) {
				tr.Get("/targets", h.Target.GetMyTargets)
				tr.Get("/performance", h.Dashboard.GetPerformance)
				tr.Get("/dashboard-stats", h.Dashboard.GetStats)
			})

			pr.Route("/customers", func(cr chi.Router) {
				cr.Get("/assigned", h.Customer.GetAssigned)
				cr.Put("/{id}", h.Customer.UpdateCustomer)
			})

			pr.Route("/sales-orders", func(or chi.Router) {
				or.Get("/my-orders", h.Order.GetMyOrders)
				or.Post("/", h.Order.CreateOrder)
			})

			pr.Route("/activities", func(ar chi.Router) {
				ar.Get("/my-activities", h.Activity.GetMyActivities)
				ar.Post("/", h.Activity.CreateActivity)
				ar.Put("/{id}", h.Activity.UpdateActivity)
				ar.Patch("/{id}/complete", h.Activity.CompleteActivity)
			})
		})
	})
}
