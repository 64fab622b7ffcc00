package router

import (
	"quickcourt/internal/handlers/availability"
	"quickcourt/internal/handlers/booking"
	"quickcourt/internal/handlers/catalog"
	"quickcourt/internal/handlers/feed"
	"quickcourt/internal/handlers/notification"
	"quickcourt/internal/handlers/profile"
	"quickcourt/internal/handlers/review"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog      catalog.Handler
	Availability availability.Handler
	Booking      booking.Handler
	Review       review.Handler
	Notification notification.Handler
	Feed         feed.Handler
	Profile      profile.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Feed.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
