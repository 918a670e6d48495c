// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions carried by SelectionChangedEvent.
const (
	ActionSelected   = "selected"
	ActionDeselected = "deselected"
	ActionCleared    = "cleared"
)

// SelectionChangedEvent is published after every successful selection
// mutation.  It carries enough information for downstream consumers to
// log or feed analytics without querying this service.
type SelectionChangedEvent struct {
	VenueID          string   `json:"venue_id"`
	Action           string   `json:"action"`
	SeatID           string   `json:"seat_id,omitempty"`
	SelectedSeatIDs  []string `json:"selected_seat_ids"`
	SeatCount        int      `json:"seat_count"`
	TotalAmountCents uint32   `json:"total_amount_cents"`
	OccurredAt       string   `json:"occurred_at"`
}
