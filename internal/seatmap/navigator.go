package seatmap

import (
	"errors"
	"math"
	"strings"
)

// Direction is a focus movement request on the pixel grid.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// ErrUnknownDirection is returned by ParseDirection for anything other
// than the four arrow directions.
var ErrUnknownDirection = errors.New("unknown direction")

// ParseDirection normalizes a direction string from the wire.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirLeft:
		return DirLeft, nil
	case DirRight:
		return DirRight, nil
	case DirUp:
		return DirUp, nil
	case DirDown:
		return DirDown, nil
	}
	return "", ErrUnknownDirection
}

// Move resolves a directional focus movement from the seat at
// flattening-order index from and returns the flattening-order index
// of the destination seat.
//
// Horizontal moves step one position within the current pixel row and
// wrap to the opposite end of the same row at an edge.  Vertical moves
// step to the adjacent pixel row (wrapping from first to last and back)
// and land on the seat whose X is nearest the current seat's X; when
// two seats are equally near, the one encountered first in the scan
// wins.  Wraparound is plain index arithmetic over the ordered row
// lists, not a circular structure.
//
// If from is out of range, the grid is empty, or the current seat's
// row cannot be resolved, Move returns from unchanged: an impossible
// move is a no-op, not a failure.
func (x *Index) Move(from int, dir Direction) int {
	seat, ok := x.SeatAt(from)
	if !ok || len(x.sortedRowY) == 0 {
		return from
	}
	row := x.rowGrid[seat.Y]
	pos := -1
	for i, member := range row {
		if member == from {
			pos = i
			break
		}
	}
	if pos < 0 {
		return from
	}

	switch dir {
	case DirLeft:
		pos--
		if pos < 0 {
			pos = len(row) - 1
		}
		return row[pos]
	case DirRight:
		pos++
		if pos >= len(row) {
			pos = 0
		}
		return row[pos]
	case DirUp, DirDown:
		r := rowYPosition(x.sortedRowY, seat.Y)
		if r < 0 {
			return from
		}
		if dir == DirUp {
			r--
			if r < 0 {
				r = len(x.sortedRowY) - 1
			}
		} else {
			r++
			if r >= len(x.sortedRowY) {
				r = 0
			}
		}
		target := x.rowGrid[x.sortedRowY[r]]
		if len(target) == 0 {
			return from
		}
		return nearestByX(x, target, seat.X)
	}
	return from
}

// rowYPosition finds y within the sorted row list by linear scan.  The
// list is small (one entry per pixel row) and exact float equality is
// intended: a pixel row key is only ever compared against itself.
func rowYPosition(ys []float64, y float64) int {
	for i, v := range ys {
		if v == y {
			return i
		}
	}
	return -1
}

// nearestByX picks the member of row whose X coordinate is closest to
// x.  Ties keep the first candidate found, so the scan order decides.
func nearestByX(idx *Index, row []int, x float64) int {
	best := row[0]
	bestDist := math.Abs(idx.seats[best].X - x)
	for _, member := range row[1:] {
		d := math.Abs(idx.seats[member].X - x)
		if d < bestDist {
			best = member
			bestDist = d
		}
	}
	return best
}
