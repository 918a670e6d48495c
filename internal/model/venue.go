package model

// SeatStatus enumerates the availability states a seat can be in.
// Status is the sole availability gate: selecting a seat never
// changes its status, and a seat whose status is anything other
// than SeatAvailable cannot enter the selection.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available" // free to select
	SeatReserved  SeatStatus = "reserved"  // reserved by the box office
	SeatSold      SeatStatus = "sold"      // already purchased
	SeatHeld      SeatStatus = "held"      // temporarily held
)

// Seat describes a single seat on the venue map.  Seats are immutable
// value records; once a venue is loaded nothing in this service
// mutates them.
//
// Fields:
//  ID           – unique seat identifier across the whole venue.
//  Col          – column index within the seat's row.  Col values are
//                 unique per row but may have gaps; a gap means no
//                 seat exists there, not that a seat is missing data.
//  X, Y         – layout coordinates in map pixels.
//  PriceTier    – pricing bucket.  Tier 1 is the highest listed price
//                 in this system's convention.
//  Status       – availability state, see SeatStatus.
//  SectionID    – id of the owning section, denormalized at load time.
//  SectionLabel – label of the owning section, denormalized at load time.
//  RowIndex     – index of the owning row, denormalized at load time.
//
// The three denormalized fields are filled exactly once when the venue
// is assembled and are never recomputed afterwards.
type Seat struct {
	ID           string     `json:"id"`
	Col          int        `json:"col"`
	X            float64    `json:"x"`
	Y            float64    `json:"y"`
	PriceTier    int        `json:"priceTier"`
	Status       SeatStatus `json:"status"`
	SectionID    string     `json:"sectionId"`
	SectionLabel string     `json:"sectionLabel"`
	RowIndex     int        `json:"rowIndex"`
}

// Available reports whether the seat can currently be selected.
func (s Seat) Available() bool { return s.Status == SeatAvailable }

// Row is an ordered list of seats within a section.  The seat order is
// source order as loaded from the venue provider, which is not
// necessarily sorted by Col.
type Row struct {
	Index int    `json:"index"`
	Seats []Seat `json:"seats"`
}

// Transform carries a section's layout placement.  It is rendered by
// the UI and ignored by every algorithm in this service.
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// Section groups the rows of one seating block.
type Section struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Transform Transform `json:"transform"`
	Rows      []Row     `json:"rows"`
}

// MapSize is the drawable area of the venue map in pixels.
type MapSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Venue is the full seat map for one venue.  Instances are treated as
// immutable once loaded; replacing the venue means reloading it from
// the provider and rebuilding every derived structure.
type Venue struct {
	VenueID  string    `json:"venueId"`
	Name     string    `json:"name"`
	Map      MapSize   `json:"map"`
	Sections []Section `json:"sections"`
}
