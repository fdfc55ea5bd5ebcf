// Package seatmap lays out a showtime's seats as a row/column grid, tracks
// the user's selection and derives the price preview. It is pure state: all
// I/O stays with the caller.
package seatmap

import (
	"sort"

	"cinetix/model"
)

// Row is one lettered row of seats, columns ascending.
type Row struct {
	Label string
	Seats []model.Seat
}

// Grid is a deterministic row/column layout of a flat seat list.
type Grid struct {
	rows []Row
}

// Build partitions seats by row, sorts row labels lexicographically and
// seats within a row by column ascending. The result is independent of the
// input order, which backends do not guarantee. Row and column are the
// authoritative position; seat_number is treated as a label only.
func Build(seats []model.Seat) Grid {
	byRow := make(map[string][]model.Seat)
	for _, seat := range seats {
		byRow[seat.Row] = append(byRow[seat.Row], seat)
	}

	labels := make([]string, 0, len(byRow))
	for label := range byRow {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([]Row, 0, len(labels))
	for _, label := range labels {
		rowSeats := byRow[label]
		sort.Slice(rowSeats, func(i, j int) bool {
			if rowSeats[i].Column != rowSeats[j].Column {
				return rowSeats[i].Column < rowSeats[j].Column
			}
			return rowSeats[i].Id < rowSeats[j].Id
		})
		rows = append(rows, Row{Label: label, Seats: rowSeats})
	}
	return Grid{rows: rows}
}

// Rows returns the grid rows in display order.
func (g Grid) Rows() []Row {
	return g.rows
}

// Empty reports whether the grid holds no seats at all.
func (g Grid) Empty() bool {
	for _, row := range g.rows {
		if len(row.Seats) > 0 {
			return false
		}
	}
	return true
}

// Flatten returns all seats in row-then-column order.
func (g Grid) Flatten() []model.Seat {
	var seats []model.Seat
	for _, row := range g.rows {
		seats = append(seats, row.Seats...)
	}
	return seats
}

// SeatAt returns the seat at a row/column index pair in display order.
func (g Grid) SeatAt(rowIndex int, colIndex int) (model.Seat, bool) {
	if rowIndex < 0 || rowIndex >= len(g.rows) {
		return model.Seat{}, false
	}
	row := g.rows[rowIndex]
	if colIndex < 0 || colIndex >= len(row.Seats) {
		return model.Seat{}, false
	}
	return row.Seats[colIndex], true
}

// Counts summarizes seat availability for display.
type Counts struct {
	Available int
	Reserved  int
	Total     int
}

// CountSeats tallies availability over the grid.
func (g Grid) CountSeats() Counts {
	var counts Counts
	for _, row := range g.rows {
		for _, seat := range row.Seats {
			counts.Total++
			if seat.IsReserved {
				counts.Reserved++
			} else {
				counts.Available++
			}
		}
	}
	return counts
}
