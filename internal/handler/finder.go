package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-selection/internal/model"
	"github.com/iliyamo/venue-seat-selection/internal/seatmap"
)

// FinderHandler serves the adjacent-seat search over the venue held by
// the venue handler.
type FinderHandler struct {
	venues *VenueHandler
}

// NewFinderHandler constructs a FinderHandler.  The venue handler must
// be non-nil.
func NewFinderHandler(venues *VenueHandler) *FinderHandler {
	if venues == nil {
		panic("nil venue handler passed to NewFinderHandler")
	}
	return &FinderHandler{venues: venues}
}

// FindAdjacentSeats handles GET /v1/seats/adjacent.  Query parameters:
//
//	count   – required block size, 2 to 8
//	section – optional section id to search within
//	tier    – optional preferred price tier
//	center  – "true"/"1" to prefer row-center blocks
//
// A count outside the contract is a 400; a valid search with no
// qualifying block is a 404 whose body suggests the largest block the
// venue can still offer, computed from the run statistics.
func (h *FinderHandler) FindAdjacentSeats(c echo.Context) error {
	v := h.venues.Venue()
	if v == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "venue not loaded"})
	}
	count, err := strconv.Atoi(c.QueryParam("count"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "count is required and must be an integer"})
	}
	opts := seatmap.SearchOptions{
		PreferredSection: c.QueryParam("section"),
	}
	if t := c.QueryParam("tier"); t != "" {
		tier, err := strconv.Atoi(t)
		if err != nil || tier < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "tier must be a positive integer"})
		}
		opts.PreferredPriceTier = tier
	}
	if ctr := c.QueryParam("center"); ctr == "true" || ctr == "1" {
		opts.PreferCenter = true
	}

	seats, err := seatmap.FindAdjacentWithPreferences(v, count, opts)
	if err != nil {
		if errors.Is(err, seatmap.ErrInvalidSeatCount) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusNotFound, echo.Map{
			"error":      "no adjacent block found",
			"suggestion": suggestion(v, count),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"seats": seats, "count": len(seats)})
}

// AdjacentSeatStats handles GET /v1/seats/adjacent/stats and exposes
// the raw run histogram for UI hints.
func (h *FinderHandler) AdjacentSeatStats(c echo.Context) error {
	v := h.venues.Venue()
	if v == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "venue not loaded"})
	}
	return c.JSON(http.StatusOK, seatmap.AdjacentSeatStats(v))
}

// suggestion renders the closest-possible message for a failed search.
func suggestion(v *model.Venue, count int) string {
	stats := seatmap.AdjacentSeatStats(v)
	if stats.MaxRun == 0 {
		return "no adjacent seats are available in this venue"
	}
	if stats.MaxRun >= count {
		// Runs exist but none matched the preferences; the unfiltered
		// venue can still seat the party together.
		return fmt.Sprintf("%d adjacent seats exist outside the requested preferences", count)
	}
	return fmt.Sprintf("the largest available adjacent block has %d seats", stats.MaxRun)
}
