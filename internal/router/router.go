package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-selection/internal/handler"
)

// RegisterRoutes wires every endpoint of the seat-selection API onto
// the provided Echo instance.  venueCache is applied only to the venue
// map read, the one response worth caching; pass-through middleware is
// accepted so callers without Redis register the same routes.
func RegisterRoutes(e *echo.Echo, v *handler.VenueHandler, f *handler.FinderHandler, s *handler.SelectionHandler, venueCache echo.MiddlewareFunc) {
	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	api := e.Group("/v1")

	// Venue map and lifecycle.  The map is immutable between reloads,
	// so the GET goes through the cache middleware.
	api.GET("/venue", v.GetVenue, venueCache)
	api.POST("/venue/reload", v.ReloadVenue)

	// Seat queries.  The adjacent search routes are registered before
	// the :id lookup so "adjacent" is never captured as a seat id.
	api.GET("/seats/adjacent", f.FindAdjacentSeats)
	api.GET("/seats/adjacent/stats", f.AdjacentSeatStats)
	api.GET("/seats/:id", v.GetSeat)

	// Keyboard focus movement over the pixel grid.
	api.POST("/navigate", v.Navigate)

	// Selection state machine.
	api.GET("/selection", s.GetSelection)
	api.GET("/selection/summary", s.GetSummary)
	api.POST("/selection/toggle", s.ToggleSeat)
	api.POST("/selection/clear", s.ClearSelection)
}
