package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cinetix/model"
)

// AdminReport fetches the back-office summary figures.
func (c *Client) AdminReport(ctx context.Context) (model.AdminReport, error) {
	var report model.AdminReport
	if err := c.do(ctx, http.MethodGet, "/admin/report", nil, &report); err != nil {
		return model.AdminReport{}, err
	}
	return report, nil
}

// AdminReservations fetches every reservation across all users.
func (c *Client) AdminReservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := c.do(ctx, http.MethodGet, "/admin/reservations", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// PromoteUser grants the admin role to a user.
func (c *Client) PromoteUser(ctx context.Context, userID int) error {
	if userID <= 0 {
		return errors.New("user id is required")
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/promote/%d", userID), nil, nil)
}
