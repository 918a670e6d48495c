package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seat-selection/internal/model"
	"github.com/iliyamo/venue-seat-selection/internal/queue"
	"github.com/iliyamo/venue-seat-selection/internal/selection"
	queue_publisher "github.com/iliyamo/venue-seat-selection/internal/service"
)

// SelectionHandler serves the selection surface: list, summary, toggle
// and clear.  Mutations optionally publish selection.changed events;
// publishing is fire-and-forget and can never fail a request.
type SelectionHandler struct {
	store         *selection.Store
	venues        *VenueHandler
	publishEvents bool
}

// NewSelectionHandler constructs a SelectionHandler.  Both the store
// and the venue handler must be non-nil.
func NewSelectionHandler(store *selection.Store, venues *VenueHandler, publishEvents bool) *SelectionHandler {
	if store == nil || venues == nil {
		panic("nil dependency passed to NewSelectionHandler")
	}
	return &SelectionHandler{store: store, venues: venues, publishEvents: publishEvents}
}

// GetSelection handles GET /v1/selection and returns the selected
// seats in insertion order.
func (h *SelectionHandler) GetSelection(c echo.Context) error {
	seats := h.store.Seats()
	return c.JSON(http.StatusOK, echo.Map{
		"seats": seats,
		"count": len(seats),
	})
}

// GetSummary handles GET /v1/selection/summary with the running totals
// the UI shows next to the map.
func (h *SelectionHandler) GetSummary(c echo.Context) error {
	seats := h.store.Seats()
	return c.JSON(http.StatusOK, echo.Map{
		"count":              len(seats),
		"max":                selection.MaxSeats,
		"total_amount_cents": model.TotalPriceCents(seats),
	})
}

// ToggleSeat handles POST /v1/selection/toggle.  The body names a seat
// by id; the seat record itself comes from the index so the client can
// never toggle a seat the venue does not have.  The response reports
// whether the selection changed and the seat's resulting membership so
// the UI can distinguish "deselected" from "rejected at the cap";
// a full selection is not an error.
func (h *SelectionHandler) ToggleSeat(c echo.Context) error {
	idx := h.venues.Index()
	if idx == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "venue not loaded"})
	}
	var body struct {
		SeatID string `json:"seat_id"`
	}
	if err := c.Bind(&body); err != nil || body.SeatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_id is required"})
	}
	seat, _, ok := idx.SeatByID(body.SeatID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
	}

	changed := h.store.Toggle(c.Request().Context(), seat)
	selected := h.store.IsSelected(seat.ID)
	if changed {
		action := queue.ActionDeselected
		if selected {
			action = queue.ActionSelected
		}
		h.publish(c, action, seat.ID)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"changed":  changed,
		"selected": selected,
		"count":    h.store.Len(),
	})
}

// ClearSelection handles POST /v1/selection/clear.
func (h *SelectionHandler) ClearSelection(c echo.Context) error {
	h.store.Clear(c.Request().Context())
	h.publish(c, queue.ActionCleared, "")
	return c.JSON(http.StatusOK, echo.Map{"count": 0})
}

// publish emits a selection.changed event when publishing is enabled.
// The publisher logs its own failures; the request never sees them.
func (h *SelectionHandler) publish(c echo.Context, action, seatID string) {
	if !h.publishEvents {
		return
	}
	seats := h.store.Seats()
	ids := make([]string, len(seats))
	for i, s := range seats {
		ids[i] = s.ID
	}
	var venueID string
	if v := h.venues.Venue(); v != nil {
		venueID = v.VenueID
	}
	_ = queue_publisher.PublishSelectionChanged(c.Request().Context(), queue.SelectionChangedEvent{
		VenueID:          venueID,
		Action:           action,
		SeatID:           seatID,
		SelectedSeatIDs:  ids,
		SeatCount:        len(ids),
		TotalAmountCents: model.TotalPriceCents(seats),
		OccurredAt:       time.Now().UTC().Format(time.RFC3339),
	})
}
