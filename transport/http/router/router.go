package router

import (
	"carre/internal/handlers/auth"
	"carre/internal/handlers/event"
	"carre/internal/handlers/health"
	"carre/internal/handlers/invoice"
	"carre/internal/handlers/menu"
	"carre/internal/handlers/order"
	"carre/internal/handlers/payment"
	"carre/internal/handlers/table"
	"carre/internal/handlers/venue"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health  health.Handler
	Auth    auth.Handler
	Event   event.Handler
	Venue   venue.Handler
	Table   table.Handler
	Menu    menu.Handler
	Order   order.Handler
	Payment payment.Handler
	Invoice invoice.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Venue.Router(routerGroup)
		r.DomainHandlers.Table.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
