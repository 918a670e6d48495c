package seatmap

import (
	"sort"

	"github.com/iliyamo/venue-seat-selection/internal/model"
)

// Stats summarizes the adjacent-seat capacity of a venue.  Runs maps a
// run length to the number of runs of exactly that length; only runs
// of two or more seats are counted.  MaxRun is the longest counted run
// anywhere in the venue, zero when no row has two adjacent available
// seats.  Callers use it to tell the user the closest possible block
// when an exact search comes back empty.
type Stats struct {
	Runs   map[int]int `json:"runs"`
	MaxRun int         `json:"max_run"`
}

// AdjacentSeatStats scans every row for runs of contiguous available
// seats.  The adjacency rule matches the finder's: a seat that is not
// available, or a gap in the Col numbering, terminates the run.
func AdjacentSeatStats(v *model.Venue) Stats {
	stats := Stats{Runs: make(map[int]int)}
	if v == nil {
		return stats
	}
	for _, sec := range v.Sections {
		for _, row := range sec.Rows {
			sorted := make([]model.Seat, len(row.Seats))
			copy(sorted, row.Seats)
			sort.Slice(sorted, func(a, b int) bool { return sorted[a].Col < sorted[b].Col })

			run := 0
			prevCol := 0
			for _, s := range sorted {
				if s.Available() && (run == 0 || s.Col == prevCol+1) {
					run++
				} else {
					stats.record(run)
					run = 0
					if s.Available() {
						run = 1
					}
				}
				prevCol = s.Col
			}
			stats.record(run)
		}
	}
	return stats
}

// record closes out a run, counting it when it is long enough to
// matter for an adjacent search.
func (s *Stats) record(run int) {
	if run < 2 {
		return
	}
	s.Runs[run]++
	if run > s.MaxRun {
		s.MaxRun = run
	}
}
