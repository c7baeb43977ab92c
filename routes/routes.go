package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"oyow/bookings"
	"oyow/contact"
	"oyow/destinations"
	"oyow/ratelim"
	"oyow/relay"
	"oyow/sos"
	"oyow/status"
	"oyow/tours"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/assets/*filepath", http.Dir("static/assets"))
}

func AddStatusRoutes(router *httprouter.Router) {
	router.GET("/api/status", status.GetStatus)
}

func AddTourRoutes(router *httprouter.Router, h *tours.Handler) {
	router.GET("/api/tours", h.GetTours)
	router.GET("/api/tours/:id", h.GetTour)
}

func AddBookingRoutes(router *httprouter.Router, h *bookings.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(h.CreateBooking))
	router.GET("/api/bookings/:id", h.GetBooking)
	router.GET("/api/bookings/:id/ticket", h.GetTicket)
}

func AddContactRoutes(router *httprouter.Router, h *contact.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(h.SubmitContact))
}

func AddDestinationRoutes(router *httprouter.Router, h *destinations.Handler) {
	router.GET("/api/destinations", h.GetDestinations)
	// httprouter cannot mix a static /search route with the :id wildcard,
	// so the handler dispatches on the param value.
	router.GET("/api/destinations/:id", h.GetDestinationOrSearch)
	router.POST("/api/destinations", h.CreateDestination)
	router.PUT("/api/destinations/:id", h.UpdateDestination)
	router.DELETE("/api/destinations/:id", h.DeleteDestination)
}

func AddSOSRoutes(router *httprouter.Router, hub *relay.Hub, rl *ratelim.RateLimiter) {
	router.POST("/api/sos", rl.Limit(sos.ReceiveSOS(hub)))
	router.GET("/ws/sos", relay.WebSocketHandler(hub))
}
