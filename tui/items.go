package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"cinetix/model"
)

type movieItem struct {
	movie model.Movie
}

func (i movieItem) Title() string { return i.movie.Title }

func (i movieItem) Description() string {
	var parts []string
	if i.movie.Genre != "" {
		parts = append(parts, i.movie.Genre)
	}
	if i.movie.ReleaseDate != "" {
		parts = append(parts, i.movie.ReleaseDate)
	}
	if len(parts) == 0 {
		return i.movie.Description
	}
	return strings.Join(parts, " • ")
}

func (i movieItem) FilterValue() string {
	return i.movie.Title + " " + i.movie.Genre
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

type showtimeItem struct {
	showtime model.Showtime
}

func (i showtimeItem) Title() string {
	start := i.showtime.StartTime.Local()
	end := i.showtime.EndTime().Local()
	title := fmt.Sprintf("%s - %s (%d min)", start.Format("15:04"), end.Format("15:04"), i.showtime.Duration)
	if i.showtime.MovieTitle != "" {
		title = i.showtime.MovieTitle + "  " + title
	}
	return title
}

func (i showtimeItem) Description() string {
	if i.showtime.AvailableSeats > 0 {
		return fmt.Sprintf("%d seats available", i.showtime.AvailableSeats)
	}
	return fmt.Sprintf("Showtime #%d", i.showtime.Id)
}

func (i showtimeItem) FilterValue() string {
	return i.showtime.MovieTitle + " " + i.showtime.StartTime.Local().Format("15:04")
}

// sortShowtimes groups screenings by movie title and orders each group by
// start time, so one movie's slots read as a block.
func sortShowtimes(showtimes []model.Showtime) []model.Showtime {
	sorted := make([]model.Showtime, len(showtimes))
	copy(sorted, showtimes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MovieTitle != sorted[j].MovieTitle {
			return sorted[i].MovieTitle < sorted[j].MovieTitle
		}
		if !sorted[i].StartTime.Equal(sorted[j].StartTime) {
			return sorted[i].StartTime.Before(sorted[j].StartTime)
		}
		return sorted[i].Id < sorted[j].Id
	})
	return sorted
}

// filterByMovie keeps only the screenings of one movie. A zero id keeps all.
func filterByMovie(showtimes []model.Showtime, movieID int) []model.Showtime {
	if movieID == 0 {
		return showtimes
	}
	var kept []model.Showtime
	for _, showtime := range showtimes {
		if showtime.MovieId == movieID {
			kept = append(kept, showtime)
		}
	}
	return kept
}

func buildShowtimeItems(showtimes []model.Showtime) []list.Item {
	sorted := sortShowtimes(showtimes)
	items := make([]list.Item, 0, len(sorted))
	for _, showtime := range sorted {
		items = append(items, showtimeItem{showtime: showtime})
	}
	return items
}

type dateItem struct {
	date time.Time
}

func (i dateItem) Title() string {
	today := truncateDate(time.Now())
	switch {
	case i.date.Equal(today):
		return "Today"
	case i.date.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	case i.date.Before(today) || i.date.After(today.AddDate(0, 0, 6)):
		// Outside the one-week window a weekday name is ambiguous.
		return i.date.Format("Mon, 02 Jan")
	default:
		return i.date.Format("Monday")
	}
}

func (i dateItem) Description() string { return i.date.Format("02 Jan 2006") }
func (i dateItem) FilterValue() string { return i.date.Format(time.DateOnly) }

// buildDateItems offers the next week of dates. A selected date outside
// that window is kept in the list at its chronological position, so
// reopening the picker never loses the user's place.
func buildDateItems(selected time.Time) []list.Item {
	today := truncateDate(time.Now())
	selected = truncateDate(selected)

	dates := make([]time.Time, 0, 8)
	inWindow := false
	for day := 0; day < 7; day++ {
		date := today.AddDate(0, 0, day)
		if date.Equal(selected) {
			inWindow = true
		}
		dates = append(dates, date)
	}
	if !inWindow {
		dates = append(dates, selected)
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	}

	items := make([]list.Item, 0, len(dates))
	for _, date := range dates {
		items = append(items, dateItem{date: date})
	}
	return items
}

type reservationItem struct {
	reservation model.Reservation
}

func (i reservationItem) Title() string {
	labels := make([]string, 0, len(i.reservation.Seats))
	for _, seat := range i.reservation.Seats {
		labels = append(labels, seat.Label())
	}
	seats := "no seats"
	if len(labels) > 0 {
		seats = strings.Join(labels, ", ")
	}
	return fmt.Sprintf("#%d • showtime %d • %s", i.reservation.Id, i.reservation.ShowtimeId, seats)
}

func (i reservationItem) Description() string {
	desc := statusLabel(i.reservation.Status)
	if !i.reservation.Timestamp.IsZero() {
		desc += " • booked " + i.reservation.Timestamp.Local().Format("02 Jan 15:04")
	}
	if i.reservation.Payment != nil {
		desc += fmt.Sprintf(" • $%.2f via %s", i.reservation.Payment.Amount, i.reservation.Payment.PaymentMethod)
	}
	return desc
}

func (i reservationItem) FilterValue() string {
	return fmt.Sprintf("%d %s", i.reservation.Id, i.reservation.Status)
}

// statusLabel renders known statuses in a friendly form and unknown ones
// verbatim, since the backend may add statuses at any time.
func statusLabel(status string) string {
	switch status {
	case model.StatusPending:
		return "Pending"
	case model.StatusConfirmed:
		return "Confirmed"
	case model.StatusCancelled:
		return "Cancelled"
	case model.StatusAwaitingPayment:
		return "Awaiting payment"
	case model.StatusAwaitingVerification:
		return "Awaiting verification"
	default:
		return status
	}
}

func buildReservationItems(reservations []model.Reservation) []list.Item {
	sorted := make([]model.Reservation, len(reservations))
	copy(sorted, reservations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	items := make([]list.Item, 0, len(sorted))
	for _, reservation := range sorted {
		items = append(items, reservationItem{reservation: reservation})
	}
	return items
}

type paymentItem struct {
	method string
}

func (i paymentItem) Title() string {
	switch i.method {
	case "credit_card":
		return "Credit card"
	case "paypal":
		return "PayPal"
	case "cash":
		return "Cash at the counter"
	default:
		return i.method
	}
}

func (i paymentItem) Description() string { return "" }
func (i paymentItem) FilterValue() string { return i.method }

func buildPaymentItems() []list.Item {
	items := make([]list.Item, 0, len(model.PaymentMethods))
	for _, method := range model.PaymentMethods {
		items = append(items, paymentItem{method: method})
	}
	return items
}

type adminAction int

const (
	adminCreateMovie adminAction = iota
	adminCreateShowtime
	adminGenerateSeats
	adminViewReport
	adminViewReservations
	adminPromoteUser
)

type adminItem struct {
	action adminAction
	title  string
	desc   string
}

func (i adminItem) Title() string       { return i.title }
func (i adminItem) Description() string { return i.desc }
func (i adminItem) FilterValue() string { return i.title }

func buildAdminItems() []list.Item {
	return []list.Item{
		adminItem{action: adminCreateMovie, title: "Create movie", desc: "Add a movie to the catalog"},
		adminItem{action: adminCreateShowtime, title: "Create showtime", desc: "Schedule a screening"},
		adminItem{action: adminGenerateSeats, title: "Generate seats", desc: "Create the seat layout for a showtime"},
		adminItem{action: adminViewReport, title: "Report", desc: "Reservations, utilization and revenue"},
		adminItem{action: adminViewReservations, title: "All reservations", desc: "Every reservation across users"},
		adminItem{action: adminPromoteUser, title: "Promote user", desc: "Grant the admin role"},
	}
}
