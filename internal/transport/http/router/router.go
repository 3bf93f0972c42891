package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	SignUp(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type InvoicesHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health   HealthHandler
	Account  AccountHandler
	Invoices InvoicesHandler

	AuthMW func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Account == nil {
		return nil, fmt.Errorf("nil Account handler")
	}
	if deps.Invoices == nil {
		return nil, fmt.Errorf("nil Invoices handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/auth/v1", func(r chi.Router) {
		r.Post("/signup", deps.Account.SignUp)
		r.Post("/login", deps.Account.Login)
	})

	r.Route("/billing/v1", func(r chi.Router) {
		r.Use(deps.AuthMW)

		r.Get("/invoices", deps.Invoices.List)
		r.Post("/invoices", deps.Invoices.Create)
		r.Get("/invoices/{invoice_id}", deps.Invoices.Get)
		r.Post("/invoices/{invoice_id}", deps.Invoices.Update)
		r.Delete("/invoices/{invoice_id}", deps.Invoices.Delete)
	})

	return r, nil
}
