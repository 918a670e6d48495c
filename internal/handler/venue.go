package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-selection/internal/model"
	"github.com/iliyamo/venue-seat-selection/internal/repository"
	"github.com/iliyamo/venue-seat-selection/internal/seatmap"
)

// VenueHandler owns the currently loaded venue and its seat index and
// serves the map, seat lookup and focus navigation endpoints.  The
// venue and index are replaced together under the mutex on reload;
// readers take the pair atomically via snapshot().
type VenueHandler struct {
	repo    *repository.VenueRepo
	venueID string

	mu    sync.RWMutex
	venue *model.Venue
	index *seatmap.Index

	// AfterReload, when set, runs after a successful reload.  main
	// uses it to invalidate the venue map cache.
	AfterReload func(ctx context.Context)
}

// NewVenueHandler constructs a VenueHandler for one venue id.  Call
// Load before registering routes; until then every endpoint reports
// the venue as unavailable.
func NewVenueHandler(repo *repository.VenueRepo, venueID string) *VenueHandler {
	return &VenueHandler{repo: repo, venueID: venueID}
}

// Load fetches the venue from the provider and rebuilds the seat
// index.  The rebuild is wholesale: a venue change never patches the
// existing index.
func (h *VenueHandler) Load(ctx context.Context) error {
	v, err := h.repo.GetByID(ctx, h.venueID)
	if err != nil {
		return err
	}
	h.Swap(v)
	return nil
}

// Swap installs a venue and a freshly built index.  Exposed for tests
// that assemble venues in code instead of a database.
func (h *VenueHandler) Swap(v *model.Venue) {
	idx := seatmap.NewIndex(v)
	h.mu.Lock()
	h.venue = v
	h.index = idx
	h.mu.Unlock()
}

// snapshot returns the current venue/index pair.
func (h *VenueHandler) snapshot() (*model.Venue, *seatmap.Index) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.venue, h.index
}

// Venue returns the currently loaded venue, which may be nil.
func (h *VenueHandler) Venue() *model.Venue {
	v, _ := h.snapshot()
	return v
}

// Index returns the current seat index, which may be nil before Load.
func (h *VenueHandler) Index() *seatmap.Index {
	_, idx := h.snapshot()
	return idx
}

// GetVenue handles GET /v1/venue.  It returns the full venue map plus
// the price table so the UI can render legends without a second call.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	v, _ := h.snapshot()
	if v == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "venue not loaded"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue":       v,
		"price_tiers": model.PriceTiers(),
	})
}

// ReloadVenue handles POST /v1/venue/reload.  It re-fetches the venue
// from the provider and rebuilds the index.
func (h *VenueHandler) ReloadVenue(c echo.Context) error {
	if err := h.Load(c.Request().Context()); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reload venue"})
	}
	if h.AfterReload != nil {
		h.AfterReload(c.Request().Context())
	}
	v, idx := h.snapshot()
	return c.JSON(http.StatusOK, echo.Map{
		"venue_id":   v.VenueID,
		"seat_count": idx.Len(),
	})
}

// GetSeat handles GET /v1/seats/:id.  It returns the seat record and
// its flattening-order index.
func (h *VenueHandler) GetSeat(c echo.Context) error {
	_, idx := h.snapshot()
	if idx == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "venue not loaded"})
	}
	seat, order, ok := idx.SeatByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"seat": seat, "index": order})
}

// Navigate handles POST /v1/navigate.  The body names the currently
// focused seat and a direction; the response carries the destination
// seat and its flattening-order index, which the UI stores as the new
// focus.  An impossible move echoes the current seat back.
func (h *VenueHandler) Navigate(c echo.Context) error {
	_, idx := h.snapshot()
	if idx == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "venue not loaded"})
	}
	var body struct {
		SeatID    string `json:"seat_id"`
		Direction string `json:"direction"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	dir, err := seatmap.ParseDirection(body.Direction)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "direction must be one of left, right, up, down"})
	}
	_, from, ok := idx.SeatByID(body.SeatID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
	}
	to := idx.Move(from, dir)
	seat, _ := idx.SeatAt(to)
	return c.JSON(http.StatusOK, echo.Map{"seat": seat, "index": to})
}
