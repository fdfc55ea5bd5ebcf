package model

import "strconv"

type Seat struct {
	Id         int    `json:"id"`
	SeatNumber string `json:"seat_number"`
	Row        string `json:"row"`
	Column     int    `json:"column"`
	ShowtimeId int    `json:"showtime_id"`
	IsReserved bool   `json:"is_reserved"`
}

// Label returns the display label for the seat. Row and column are the
// authoritative fields; seat_number is label-only and may disagree.
func (s Seat) Label() string {
	if s.Row != "" {
		return s.Row + strconv.Itoa(s.Column)
	}
	return s.SeatNumber
}
