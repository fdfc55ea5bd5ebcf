package model

import "time"

type Showtime struct {
	Id             int       `json:"id"`
	MovieId        int       `json:"movie_id"`
	MovieTitle     string    `json:"movie_title,omitempty"`
	StartTime      time.Time `json:"start_time"`
	Duration       int       `json:"duration"`
	AvailableSeats int       `json:"available_seats,omitempty"`
	AdminId        int       `json:"admin_id,omitempty"`
}

// EndTime is the start time plus the duration in minutes.
func (s Showtime) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.Duration) * time.Minute)
}
