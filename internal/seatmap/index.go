// Package seatmap contains the read-only seat map algorithms: the seat
// index with its spatial row grid, directional focus navigation and the
// adjacent-seat search.  Everything here is pure and deterministic for
// a given venue; none of it mutates venue or selection state.
package seatmap

import (
	"sort"

	"github.com/iliyamo/venue-seat-selection/internal/model"
)

// Index holds the lookup structures derived from one venue.  It is
// built once per venue and never mutated, so concurrent readers need
// no locking.  When the venue changes the caller rebuilds the whole
// index and swaps the pointer.
//
// Three structures are maintained:
//  seats      – every seat in flattening order: section-major,
//               row-major, seat source order.  This order is also the
//               keyboard tab order; Home/End jump to index 0 and
//               Len()-1.
//  byID       – seat id to flattening-order index.
//  rowGrid    – pixel rows: seats grouped by their Y coordinate and
//               sorted by ascending X within each group.  Grouping is
//               by pixel Y, not logical row index, so two logical rows
//               sharing a Y merge into one pixel row.  The grid stores
//               flattening-order indexes, not seats.
//  sortedRowY – the distinct Y coordinates present in rowGrid in
//               ascending order, used to step between pixel rows.
type Index struct {
	seats      []model.Seat
	byID       map[string]int
	rowGrid    map[float64][]int
	sortedRowY []float64
}

// NewIndex flattens a venue into an Index.  An empty or nil venue
// yields empty structures, never an error.
func NewIndex(v *model.Venue) *Index {
	idx := &Index{
		byID:    make(map[string]int),
		rowGrid: make(map[float64][]int),
	}
	if v == nil {
		return idx
	}
	for _, sec := range v.Sections {
		for _, row := range sec.Rows {
			for _, seat := range row.Seats {
				order := len(idx.seats)
				idx.seats = append(idx.seats, seat)
				idx.byID[seat.ID] = order
				idx.rowGrid[seat.Y] = append(idx.rowGrid[seat.Y], order)
			}
		}
	}
	for y, members := range idx.rowGrid {
		sort.SliceStable(members, func(a, b int) bool {
			return idx.seats[members[a]].X < idx.seats[members[b]].X
		})
		idx.sortedRowY = append(idx.sortedRowY, y)
	}
	sort.Float64s(idx.sortedRowY)
	return idx
}

// Len returns the number of seats in the index.
func (x *Index) Len() int { return len(x.seats) }

// SeatAt returns the seat at the given flattening-order index.
func (x *Index) SeatAt(i int) (model.Seat, bool) {
	if i < 0 || i >= len(x.seats) {
		return model.Seat{}, false
	}
	return x.seats[i], true
}

// SeatByID looks up a seat by id and returns it together with its
// flattening-order index.
func (x *Index) SeatByID(id string) (model.Seat, int, bool) {
	i, ok := x.byID[id]
	if !ok {
		return model.Seat{}, 0, false
	}
	return x.seats[i], i, true
}

// Seats returns all seats in flattening order.  The returned slice is
// a copy; callers may keep it across index rebuilds.
func (x *Index) Seats() []model.Seat {
	out := make([]model.Seat, len(x.seats))
	copy(out, x.seats)
	return out
}

// PixelRow returns the flattening-order indexes of the seats sharing
// the given Y coordinate, sorted by ascending X.
func (x *Index) PixelRow(y float64) []int {
	return x.rowGrid[y]
}

// RowYs returns the distinct pixel-row Y coordinates in ascending order.
func (x *Index) RowYs() []float64 {
	return x.sortedRowY
}
