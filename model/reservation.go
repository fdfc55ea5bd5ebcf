package model

import "time"

// Reservation statuses the backend is known to emit. The set is
// backend-defined and may grow; unknown statuses are rendered verbatim.
const (
	StatusPending              = "pending"
	StatusConfirmed            = "confirmed"
	StatusCancelled            = "cancelled"
	StatusAwaitingPayment      = "awaiting_payment"
	StatusAwaitingVerification = "awaiting_verification"
)

// Payment methods accepted by the backend.
var PaymentMethods = []string{"credit_card", "paypal", "cash", "M-Pesa"}

type Reservation struct {
	Id         int       `json:"id"`
	UserId     int       `json:"user_id"`
	ShowtimeId int       `json:"showtime_id"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
	Seats      []Seat    `json:"seats"`
	Payment    *Payment  `json:"payment,omitempty"`
}

type Payment struct {
	Id            int     `json:"id"`
	UserId        int     `json:"user_id"`
	ReservationId int     `json:"reservation_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	TransactionId string  `json:"transaction_id,omitempty"`
}
