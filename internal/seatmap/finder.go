package seatmap

import (
	"errors"
	"math"
	"sort"

	"github.com/iliyamo/venue-seat-selection/internal/model"
)

// Bounds on the adjacent-seat search.  A request for a single seat is
// an ordinary click, not a search, and anything past MaxAdjacent can
// never fit the selection cap.
const (
	MinAdjacent = 2
	MaxAdjacent = 8
)

// ErrInvalidSeatCount is returned when the requested block size is
// outside [MinAdjacent, MaxAdjacent].  This is a caller error and is
// deliberately distinct from ErrNoAdjacentBlock: an invalid request is
// not the same thing as a valid request with no answer.
var ErrInvalidSeatCount = errors.New("adjacent seat count must be between 2 and 8")

// ErrNoAdjacentBlock is returned when no row in the venue contains a
// qualifying block of the requested size.
var ErrNoAdjacentBlock = errors.New("no adjacent seat block found")

// SearchOptions bias the adjacent-seat search.  The zero value means
// no preference.
//
//  PreferredSection   – when non-empty, only rows of this section id
//                       are searched.
//  PreferredPriceTier – when positive, windows whose mean tier is far
//                       from this tier are penalized.
//  PreferCenter       – when set, windows away from the row center are
//                       penalized.
type SearchOptions struct {
	PreferredSection   string
	PreferredPriceTier int
	PreferCenter       bool
}

// FindAdjacent searches every row of the venue for the best block of
// count physically contiguous available seats.  See
// FindAdjacentWithPreferences for the full contract.
func FindAdjacent(v *model.Venue, count int) ([]model.Seat, error) {
	return FindAdjacentWithPreferences(v, count, SearchOptions{})
}

// FindAdjacentWithPreferences finds the best-scoring block of count
// adjacent seats, optionally biased by opts.
//
// For every logical row the seats are sorted by ascending Col and a
// window of width count slides across them.  A window qualifies only
// when every seat is available and consecutive Col values increase by
// exactly one: a gap in the numbering disqualifies the window even if
// everything in it is available, because "adjacent" means physically
// contiguous.  Each row keeps its lowest-scoring qualifying window,
// and the lowest-scoring row candidate overall wins.  Ties keep the
// candidate discovered first in section/row iteration order.
//
// Scoring follows the venue's pricing convention: the base score is
// the window's mean price tier and lower wins.  Tier 1 is the most
// expensive seat, so uniform-price ties resolve toward the pricier
// block.  That is the long-standing observed behavior and callers
// depend on its determinism, so it is preserved as-is.
//
// The result is the winning seats in ascending Col order, or
// ErrNoAdjacentBlock when no row qualifies.  ErrInvalidSeatCount is
// returned for a count outside [MinAdjacent, MaxAdjacent] before any
// row is examined.  The search never mutates the venue.
func FindAdjacentWithPreferences(v *model.Venue, count int, opts SearchOptions) ([]model.Seat, error) {
	if count < MinAdjacent || count > MaxAdjacent {
		return nil, ErrInvalidSeatCount
	}
	if v == nil {
		return nil, ErrNoAdjacentBlock
	}

	var best []model.Seat
	bestScore := math.Inf(1)
	for _, sec := range v.Sections {
		if opts.PreferredSection != "" && sec.ID != opts.PreferredSection {
			continue
		}
		for _, row := range sec.Rows {
			candidate, score, ok := bestWindowInRow(row.Seats, count, opts)
			if ok && score < bestScore {
				bestScore = score
				best = candidate
			}
		}
	}
	if best == nil {
		return nil, ErrNoAdjacentBlock
	}
	return best, nil
}

// bestWindowInRow slides a window of width count across the row's
// seats sorted by Col and returns the lowest-scoring qualifying
// window.  With equal scores the leftmost window is kept.
func bestWindowInRow(seats []model.Seat, count int, opts SearchOptions) ([]model.Seat, float64, bool) {
	if len(seats) < count {
		return nil, 0, false
	}
	sorted := make([]model.Seat, len(seats))
	copy(sorted, seats)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Col < sorted[b].Col })

	var best []model.Seat
	bestScore := math.Inf(1)
	for i := 0; i+count <= len(sorted); i++ {
		window := sorted[i : i+count]
		if !contiguousAvailable(window) {
			continue
		}
		score := scoreWindow(window, len(sorted), opts)
		if score < bestScore {
			bestScore = score
			best = append([]model.Seat(nil), window...)
		}
	}
	return best, bestScore, best != nil
}

// contiguousAvailable reports whether every seat in the window is
// available and the Col values form a strict +1 run.
func contiguousAvailable(window []model.Seat) bool {
	for i, s := range window {
		if !s.Available() {
			return false
		}
		if i > 0 && s.Col != window[i-1].Col+1 {
			return false
		}
	}
	return true
}

// scoreWindow computes the window's score; lower is better.  The base
// is the mean price tier.  A preferred tier adds half the distance of
// the mean from that tier.  Center preference adds a tenth of the
// distance between the window's mean X and the row center, where the
// row center is half the row's seat count.  Comparing a seat count
// against a pixel coordinate looks wrong but matches the shipped
// scoring exactly, and existing venues are tuned around it.
func scoreWindow(window []model.Seat, rowSeatCount int, opts SearchOptions) float64 {
	var tierSum, xSum float64
	for _, s := range window {
		tierSum += float64(s.PriceTier)
		xSum += s.X
	}
	meanTier := tierSum / float64(len(window))
	score := meanTier
	if opts.PreferredPriceTier > 0 {
		score += 0.5 * math.Abs(meanTier-float64(opts.PreferredPriceTier))
	}
	if opts.PreferCenter {
		windowCenterX := xSum / float64(len(window))
		rowCenter := float64(rowSeatCount) / 2
		score += 0.1 * math.Abs(windowCenterX-rowCenter)
	}
	return score
}
