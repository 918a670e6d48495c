// Package repository provides data access for venue seat maps.  The
// rest of the service treats a loaded venue as immutable and already
// validated; this layer is the only place that touches the database.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/venue-seat-selection/internal/model"
)

// ErrVenueNotFound is returned when a venue lookup yields no rows.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepo assembles full venue seat maps from the venues, sections
// and seats tables.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// GetByID loads one venue with all of its sections, rows and seats.
// Sections come back in their stored position order and seats in
// source order within each row; both orders are load-bearing because
// they define the flattening order downstream.
//
// Seat enrichment happens here, exactly once: every seat is stamped
// with its owning section's id and label and its row index while the
// rows are assembled.  Nothing downstream re-derives these fields.
func (r *VenueRepo) GetByID(ctx context.Context, venueID string) (*model.Venue, error) {
	const vq = `SELECT id, name, map_width, map_height FROM venues WHERE id = ?`
	v := &model.Venue{}
	err := r.db.QueryRowContext(ctx, vq, venueID).
		Scan(&v.VenueID, &v.Name, &v.Map.Width, &v.Map.Height)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	sections, err := r.sectionsByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	for i := range sections {
		rows, err := r.rowsBySection(ctx, &sections[i])
		if err != nil {
			return nil, err
		}
		sections[i].Rows = rows
	}
	v.Sections = sections
	return v, nil
}

// sectionsByVenue retrieves the venue's sections ordered by position.
func (r *VenueRepo) sectionsByVenue(ctx context.Context, venueID string) ([]model.Section, error) {
	const q = `SELECT id, label, translate_x, translate_y, scale
	           FROM sections
	           WHERE venue_id = ?
	           ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Section
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.Label, &s.Transform.X, &s.Transform.Y, &s.Transform.Scale); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// rowsBySection retrieves a section's seats grouped into rows.  Seats
// are ordered by row index first and stored position second, so a new
// row starts whenever the row index changes and seats keep their
// source order inside it.
func (r *VenueRepo) rowsBySection(ctx context.Context, sec *model.Section) ([]model.Row, error) {
	const q = `SELECT id, row_index, col, x, y, price_tier, status
	           FROM seats
	           WHERE section_id = ?
	           ORDER BY row_index, position, id`
	rows, err := r.db.QueryContext(ctx, q, sec.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Row
	for rows.Next() {
		var seat model.Seat
		var rowIndex int
		if err := rows.Scan(&seat.ID, &rowIndex, &seat.Col, &seat.X, &seat.Y, &seat.PriceTier, &seat.Status); err != nil {
			return nil, err
		}
		// Load-time enrichment: the seat carries its owners' identity
		// from here on and never looks them up again.
		seat.SectionID = sec.ID
		seat.SectionLabel = sec.Label
		seat.RowIndex = rowIndex

		if n := len(result); n == 0 || result[n-1].Index != rowIndex {
			result = append(result, model.Row{Index: rowIndex})
		}
		last := &result[len(result)-1]
		last.Seats = append(last.Seats, seat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
