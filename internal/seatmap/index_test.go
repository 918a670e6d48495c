package seatmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-seat-selection/internal/model"
	"github.com/iliyamo/venue-seat-selection/internal/seatmap"
)

func TestNewIndex_FlatteningOrder(t *testing.T) {
	idx := seatmap.NewIndex(testVenue())

	require.Equal(t, 11, idx.Len())

	// Section-major, row-major, source order.
	first, ok := idx.SeatAt(0)
	require.True(t, ok)
	require.Equal(t, "orch-1-1", first.ID)

	last, ok := idx.SeatAt(idx.Len() - 1)
	require.True(t, ok)
	require.Equal(t, "balc-1-3", last.ID)

	// The first balcony seat comes after all 8 orchestra seats.
	_, order, ok := idx.SeatByID("balc-1-1")
	require.True(t, ok)
	require.Equal(t, 8, order)
}

func TestNewIndex_SeatByID(t *testing.T) {
	idx := seatmap.NewIndex(testVenue())

	s, order, ok := idx.SeatByID("orch-2-4")
	require.True(t, ok)
	require.Equal(t, 4, s.Col)
	require.Equal(t, "Orchestra", s.SectionLabel)
	require.Equal(t, 6, order)

	_, _, ok = idx.SeatByID("nope")
	require.False(t, ok)
}

func TestNewIndex_PixelRowsSortedByX(t *testing.T) {
	idx := seatmap.NewIndex(testVenue())

	rowIdx := idx.PixelRow(150)
	require.Len(t, rowIdx, 4)
	var xs []float64
	for _, i := range rowIdx {
		s, _ := idx.SeatAt(i)
		xs = append(xs, s.X)
	}
	require.Equal(t, []float64{40, 80, 160, 200}, xs)

	require.Equal(t, []float64{100, 150, 300}, idx.RowYs())
}

func TestNewIndex_MergesLogicalRowsSharingY(t *testing.T) {
	// Two logical rows in different sections at the same pixel Y form
	// one pixel row; the navigator works in screen space.
	v := &model.Venue{
		Sections: []model.Section{
			{ID: "a", Label: "A", Rows: []model.Row{row("a", "A", 1, 1, 50, 1, 2)}},
			{ID: "b", Label: "B", Rows: []model.Row{row("b", "B", 1, 1, 50, 1, 2)}},
		},
	}
	// Shift section b rightwards so X ordering interleaves cleanly.
	for i := range v.Sections[1].Rows[0].Seats {
		v.Sections[1].Rows[0].Seats[i].X += 200
	}
	idx := seatmap.NewIndex(v)

	require.Equal(t, []float64{50}, idx.RowYs())
	require.Len(t, idx.PixelRow(50), 4)
}

func TestNewIndex_EmptyVenue(t *testing.T) {
	idx := seatmap.NewIndex(&model.Venue{})
	require.Zero(t, idx.Len())
	require.Empty(t, idx.RowYs())

	idx = seatmap.NewIndex(nil)
	require.Zero(t, idx.Len())
}
