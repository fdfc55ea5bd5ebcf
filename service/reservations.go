package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cinetix/model"
)

// CreateReservation books the selected seats for a showtime as a single
// atomic request. Partial success is a backend concern; the call either
// returns the created reservation or fails as a whole.
func (c *Client) CreateReservation(ctx context.Context, showtimeID int, seatIDs []int, paymentMethod string, paymentToken string) (model.Reservation, error) {
	if showtimeID <= 0 {
		return model.Reservation{}, errors.New("showtime id is required")
	}
	if len(seatIDs) == 0 {
		return model.Reservation{}, errors.New("at least one seat is required")
	}
	body := map[string]any{
		"showtime_id":    showtimeID,
		"seat_ids":       seatIDs,
		"payment_method": paymentMethod,
	}
	if paymentToken != "" {
		body["payment_token"] = paymentToken
	}
	var reservation model.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", body, &reservation); err != nil {
		return model.Reservation{}, err
	}
	return reservation, nil
}

// CancelReservation cancels by id. Cancelling an already-deleted reservation
// surfaces the backend's error; the call is not idempotent.
func (c *Client) CancelReservation(ctx context.Context, id int) error {
	if id <= 0 {
		return errors.New("reservation id is required")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), nil, nil)
}

// MyReservations fetches the current user's reservations.
func (c *Client) MyReservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}
