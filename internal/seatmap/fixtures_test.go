package seatmap_test

import (
	"fmt"

	"github.com/iliyamo/venue-seat-selection/internal/model"
)

// seat builds a seat with layout coordinates derived from its column
// (40px pitch) unless the caller overrides them afterwards.
func seat(section, label string, rowIndex, col, tier int, y float64, status model.SeatStatus) model.Seat {
	return model.Seat{
		ID:           fmt.Sprintf("%s-%d-%d", section, rowIndex, col),
		Col:          col,
		X:            float64(col) * 40,
		Y:            y,
		PriceTier:    tier,
		Status:       status,
		SectionID:    section,
		SectionLabel: label,
		RowIndex:     rowIndex,
	}
}

// row builds a row of available seats at the given columns.
func row(section, label string, rowIndex, tier int, y float64, cols ...int) model.Row {
	r := model.Row{Index: rowIndex}
	for _, c := range cols {
		r.Seats = append(r.Seats, seat(section, label, rowIndex, c, tier, y, model.SeatAvailable))
	}
	return r
}

// testVenue is the standard small venue used across the seatmap tests:
//
//	Orchestra row 1 (y=100): cols 1-4, tier 2, all available
//	Orchestra row 2 (y=150): cols 1,2,4,5 (gap at 3), tier 2, available
//	Balcony   row 1 (y=300): cols 1-3, tier 3, col 2 sold
func testVenue() *model.Venue {
	balc := row("balc", "Balcony", 1, 3, 300, 1, 2, 3)
	balc.Seats[1].Status = model.SeatSold
	return &model.Venue{
		VenueID: "venue-1",
		Name:    "Test Hall",
		Map:     model.MapSize{Width: 800, Height: 600},
		Sections: []model.Section{
			{
				ID:        "orch",
				Label:     "Orchestra",
				Transform: model.Transform{Scale: 1},
				Rows: []model.Row{
					row("orch", "Orchestra", 1, 2, 100, 1, 2, 3, 4),
					row("orch", "Orchestra", 2, 2, 150, 1, 2, 4, 5),
				},
			},
			{
				ID:        "balc",
				Label:     "Balcony",
				Transform: model.Transform{Scale: 1},
				Rows:      []model.Row{balc},
			},
		},
	}
}
