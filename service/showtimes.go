package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cinetix/model"
)

// CreateShowtime schedules a screening of a movie.
func (c *Client) CreateShowtime(ctx context.Context, movieID int, startTime time.Time, duration int) (model.Showtime, error) {
	if movieID <= 0 {
		return model.Showtime{}, errors.New("movie id is required")
	}
	if duration <= 0 {
		return model.Showtime{}, errors.New("duration must be positive")
	}
	body := map[string]any{
		"movie_id":   movieID,
		"start_time": startTime.Format(time.RFC3339),
		"duration":   duration,
	}
	var showtime model.Showtime
	if err := c.do(ctx, http.MethodPost, "/showtimes", body, &showtime); err != nil {
		return model.Showtime{}, err
	}
	return showtime, nil
}

// SearchShowtimes fetches the showtimes scheduled on a given day.
func (c *Client) SearchShowtimes(ctx context.Context, date time.Time) ([]model.Showtime, error) {
	path := "/showtimes/search?date=" + date.Format(time.DateOnly)
	var showtimes []model.Showtime
	if err := c.do(ctx, http.MethodGet, path, nil, &showtimes); err != nil {
		return nil, err
	}
	return showtimes, nil
}

// GetShowtimeSeats fetches the full seat list for a showtime, reserved ones
// included. Order is not guaranteed by the backend; callers group and sort.
func (c *Client) GetShowtimeSeats(ctx context.Context, showtimeID int) ([]model.Seat, error) {
	if showtimeID <= 0 {
		return nil, errors.New("showtime id is required")
	}
	var seats []model.Seat
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/showtimes/%d/seats", showtimeID), nil, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// CreateSeats registers a batch of seats for a showtime by seat number.
func (c *Client) CreateSeats(ctx context.Context, showtimeID int, seatNumbers []string) error {
	if showtimeID <= 0 {
		return errors.New("showtime id is required")
	}
	if len(seatNumbers) == 0 {
		return errors.New("at least one seat number is required")
	}
	body := map[string]any{
		"showtime_id":  showtimeID,
		"seat_numbers": seatNumbers,
	}
	return c.do(ctx, http.MethodPost, "/seats", body, nil)
}
