package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/voltara/merchant-api/internal/auth"
	commissionHandler "github.com/voltara/merchant-api/internal/http/commission"
	employeeHandler "github.com/voltara/merchant-api/internal/http/employee"
	invoiceHandler "github.com/voltara/merchant-api/internal/http/invoice"
)

func New(
	jwtSecret string,
	webhookSecret string,
	commissionsV1 *commissionHandler.Handler,
	invoicesV1 *invoiceHandler.Handler,
	employeesV1 *employeeHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		// Merchant session endpoints.
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))

			r.Route("/commissions", commissionsV1.Routes)
			r.Route("/invoices", invoicesV1.Routes)

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				employeesV1.Routes(r)
			})
		})

		// Gateway callbacks authenticate with a shared secret, not a
		// merchant session.
		r.Route("/webhooks", func(r chi.Router) {
			r.Use(webhookAuth(webhookSecret))
			r.Use(middleware.AllowContentType("application/json"))
			invoicesV1.WebhookRoutes(r)
		})
	})

	return router
}

func webhookAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Webhook-Secret")
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
