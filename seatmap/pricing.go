package seatmap

// Pricing previews the cost of a selection. The backend computes the
// authoritative price at reservation time; these figures are display only.
type Pricing struct {
	SeatPrice  float64
	BookingFee float64
}

// DefaultPricing mirrors the backend's seeded ticket price and booking fee.
var DefaultPricing = Pricing{SeatPrice: 12.00, BookingFee: 1.50}

type Summary struct {
	Seats    int
	Subtotal float64
	Fee      float64
	Total    float64
}

// Summarize derives the running totals for n selected seats. The booking fee
// applies once, and only when the selection is non-empty.
func (p Pricing) Summarize(n int) Summary {
	if n <= 0 {
		return Summary{}
	}
	subtotal := float64(n) * p.SeatPrice
	return Summary{
		Seats:    n,
		Subtotal: subtotal,
		Fee:      p.BookingFee,
		Total:    subtotal + p.BookingFee,
	}
}
