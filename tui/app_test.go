package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cinetix/booking"
	"cinetix/model"
	"cinetix/seatmap"
)

func TestExpandSeatNumbers(t *testing.T) {
	seats, err := expandSeatNumbers("ABCDEF", 8)
	if err != nil {
		t.Fatalf("expandSeatNumbers returned error: %v", err)
	}
	if len(seats) != 48 {
		t.Fatalf("expected 48 seats, got %d", len(seats))
	}
	if seats[0] != "A1" {
		t.Errorf("first seat = %q, want A1", seats[0])
	}
	if seats[len(seats)-1] != "F8" {
		t.Errorf("last seat = %q, want F8", seats[len(seats)-1])
	}
	if seats[8] != "B1" {
		t.Errorf("seat after row A = %q, want B1", seats[8])
	}
}

func TestExpandSeatNumbersLowercaseAndSpaces(t *testing.T) {
	if seats, err := expandSeatNumbers("a b", 2); err == nil {
		// Spaces inside the row string are invalid, but surrounding
		// whitespace and lowercase letters are normalized.
		t.Fatalf("expected error for embedded space, got %v", seats)
	}

	seats, err := expandSeatNumbers("  ab ", 2)
	if err != nil {
		t.Fatalf("lowercase rows should normalize: %v", err)
	}
	want := []string{"A1", "A2", "B1", "B2"}
	for i, seat := range want {
		if seats[i] != seat {
			t.Errorf("seats[%d] = %q, want %q", i, seats[i], seat)
		}
	}
}

func TestExpandSeatNumbersRejectsBadInput(t *testing.T) {
	cases := []struct {
		name        string
		rows        string
		seatsPerRow int
	}{
		{"empty rows", "", 8},
		{"zero columns", "AB", 0},
		{"negative columns", "AB", -1},
		{"digit in rows", "A1", 8},
		{"duplicate row", "AA", 8},
		{"too many columns", "A", 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := expandSeatNumbers(tc.rows, tc.seatsPerRow); err == nil {
				t.Errorf("expandSeatNumbers(%q, %d) accepted invalid input", tc.rows, tc.seatsPerRow)
			}
		})
	}
}

func TestParseShowtimeStart(t *testing.T) {
	parsed, err := parseShowtimeStart("2026-09-01 19:30")
	if err != nil {
		t.Fatalf("parseShowtimeStart returned error: %v", err)
	}
	if parsed.Hour() != 19 || parsed.Minute() != 30 {
		t.Errorf("parsed time = %v, want 19:30", parsed)
	}

	if _, err := parseShowtimeStart("2026-09-01T19:30:00Z"); err != nil {
		t.Errorf("RFC3339 should parse: %v", err)
	}
	if _, err := parseShowtimeStart("next tuesday"); err == nil {
		t.Error("free-form dates must be rejected")
	}
}

func TestSortShowtimesGroupsByMovie(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	showtimes := []model.Showtime{
		{Id: 1, MovieTitle: "Zodiac", StartTime: base},
		{Id: 2, MovieTitle: "Alien", StartTime: base.Add(4 * time.Hour)},
		{Id: 3, MovieTitle: "Alien", StartTime: base.Add(1 * time.Hour)},
		{Id: 4, MovieTitle: "Zodiac", StartTime: base.Add(-1 * time.Hour)},
	}

	sorted := sortShowtimes(showtimes)
	wantIDs := []int{3, 2, 4, 1}
	for i, want := range wantIDs {
		if sorted[i].Id != want {
			t.Errorf("sorted[%d].Id = %d, want %d", i, sorted[i].Id, want)
		}
	}

	// Input order must not change.
	if showtimes[0].Id != 1 {
		t.Error("sortShowtimes must not mutate its input")
	}
}

func TestFilterByMovie(t *testing.T) {
	showtimes := []model.Showtime{
		{Id: 1, MovieId: 10},
		{Id: 2, MovieId: 20},
		{Id: 3, MovieId: 10},
	}

	kept := filterByMovie(showtimes, 10)
	if len(kept) != 2 {
		t.Fatalf("expected 2 showtimes for movie 10, got %d", len(kept))
	}

	all := filterByMovie(showtimes, 0)
	if len(all) != 3 {
		t.Errorf("zero movie id must keep all showtimes, got %d", len(all))
	}
}

func TestBuildDateItemsOffersOneWeek(t *testing.T) {
	items := buildDateItems(time.Now())
	if len(items) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(items))
	}

	first, ok := items[0].(dateItem)
	if !ok {
		t.Fatalf("unexpected item type %T", items[0])
	}
	if first.Title() != "Today" {
		t.Errorf("first date title = %q, want Today", first.Title())
	}
	second := items[1].(dateItem)
	if second.Title() != "Tomorrow" {
		t.Errorf("second date title = %q, want Tomorrow", second.Title())
	}
	if !second.date.After(first.date) {
		t.Error("dates must be ascending")
	}
}

func TestNextGenreCycles(t *testing.T) {
	genre := ""
	seen := map[string]bool{}
	for range model.Genres {
		genre = nextGenre(genre)
		if genre == "" {
			t.Fatal("cycle ended before covering every genre")
		}
		if seen[genre] {
			t.Fatalf("genre %q repeated before the cycle completed", genre)
		}
		seen[genre] = true
	}
	if next := nextGenre(genre); next != "" {
		t.Errorf("cycle must end back at all genres, got %q", next)
	}
}

func TestStatusLabel(t *testing.T) {
	if got := statusLabel(model.StatusAwaitingPayment); got != "Awaiting payment" {
		t.Errorf("statusLabel(awaiting_payment) = %q", got)
	}
	// Unknown statuses pass through verbatim.
	if got := statusLabel("refund_pending"); got != "refund_pending" {
		t.Errorf("statusLabel(refund_pending) = %q", got)
	}
}

func TestRenderSeatGrid(t *testing.T) {
	grid := seatmap.Build([]model.Seat{
		{Id: 1, Row: "A", Column: 1},
		{Id: 2, Row: "A", Column: 2, IsReserved: true},
		{Id: 3, Row: "B", Column: 1},
	})
	selection := seatmap.NewSelection()

	out := renderSeatGrid(grid, selection, 0, 0)
	if !strings.Contains(out, "SCREEN") {
		t.Error("grid must render the screen bar")
	}
	for _, label := range []string{"A1", "A2", "B1"} {
		if !strings.Contains(out, label) {
			t.Errorf("grid output missing seat %s", label)
		}
	}
	if !strings.Contains(out, "reserved") {
		t.Error("grid must render the legend")
	}
}

func TestRenderSeatGridEmpty(t *testing.T) {
	out := renderSeatGrid(seatmap.Build(nil), seatmap.NewSelection(), 0, 0)
	if !strings.Contains(out, "No seats") {
		t.Errorf("empty grid should explain itself, got %q", out)
	}
}

func TestRenderPriceSummary(t *testing.T) {
	grid := seatmap.Build([]model.Seat{
		{Id: 1, Row: "A", Column: 1},
		{Id: 2, Row: "A", Column: 2},
	})
	selection := seatmap.NewSelection()
	pricing := seatmap.Pricing{SeatPrice: 12.00, BookingFee: 1.50}

	out := renderPriceSummary(pricing, selection, grid)
	if !strings.Contains(out, "Select seats") {
		t.Errorf("empty selection should prompt, got %q", out)
	}

	selection.Toggle(model.Seat{Id: 1, Row: "A", Column: 1})
	selection.Toggle(model.Seat{Id: 2, Row: "A", Column: 2})
	out = renderPriceSummary(pricing, selection, grid)
	if !strings.Contains(out, "$24.00") {
		t.Errorf("subtotal missing from %q", out)
	}
	if !strings.Contains(out, "$25.50") {
		t.Errorf("total with booking fee missing from %q", out)
	}
	if !strings.Contains(out, "A1, A2") {
		t.Errorf("seat labels missing from %q", out)
	}
}

func TestMoveCursorClampsToGrid(t *testing.T) {
	m := appModel{
		grid: seatmap.Build([]model.Seat{
			{Id: 1, Row: "A", Column: 1},
			{Id: 2, Row: "A", Column: 2},
			{Id: 3, Row: "A", Column: 3},
			{Id: 4, Row: "B", Column: 1},
		}),
	}

	m.moveCursor(0, 5)
	if m.cursorCol != 2 {
		t.Errorf("cursor col = %d, want clamp to 2", m.cursorCol)
	}

	// Moving down into the shorter row re-clamps the column.
	m.moveCursor(1, 0)
	if m.cursorRow != 1 || m.cursorCol != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", m.cursorRow, m.cursorCol)
	}

	m.moveCursor(-5, -5)
	if m.cursorRow != 0 || m.cursorCol != 0 {
		t.Errorf("cursor = (%d,%d), want origin", m.cursorRow, m.cursorCol)
	}
}

func TestMovieItemDescription(t *testing.T) {
	item := movieItem{movie: model.Movie{Title: "Alien", Genre: "Sci-Fi", ReleaseDate: "1979-05-25"}}
	if got := item.Description(); got != "Sci-Fi • 1979-05-25" {
		t.Errorf("description = %q", got)
	}

	bare := movieItem{movie: model.Movie{Title: "Alien", Description: "In space no one can hear you scream."}}
	if got := bare.Description(); got != "In space no one can hear you scream." {
		t.Errorf("fallback description = %q", got)
	}
}

func newBookingTestModel() appModel {
	return appModel{
		state:     stateBooking,
		selection: seatmap.NewSelection(),
		flow:      booking.NewFlow(),
		grid: seatmap.Build([]model.Seat{
			{Id: 1, Row: "A", Column: 1},
			{Id: 2, Row: "A", Column: 2},
		}),
	}
}

func TestBookingKeysPinnedWhileInFlight(t *testing.T) {
	m := newBookingTestModel()
	m.selection.Toggle(model.Seat{Id: 1, Row: "A", Column: 1})
	if err := m.flow.Start(m.selection.Count()); err != nil {
		t.Fatalf("flow.Start: %v", err)
	}
	m.fetchSeq = 1

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := next.(appModel)

	if got.state != stateBooking {
		t.Errorf("state = %v, esc must not leave the booking screen mid-submit", got.state)
	}
	if !got.flow.InFlight() {
		t.Error("esc must not reset an in-flight booking")
	}
	if got.selection.Count() != 1 {
		t.Errorf("selection count = %d, esc must not clear the selection mid-submit", got.selection.Count())
	}
}

func TestStaleBookingResultDropped(t *testing.T) {
	m := newBookingTestModel()
	// The user escaped before submitting again; a later fetch superseded
	// the booking response.
	m.state = stateShowtimes
	m.fetchSeq = 2

	next, _ := m.Update(bookingResultMsg{seq: 1, err: errors.New("seat already reserved")})
	got := next.(appModel)

	if got.state != stateShowtimes {
		t.Errorf("state = %v, a stale booking result must not change screens", got.state)
	}
	if got.flow.Err() != nil {
		t.Errorf("flow err = %v, stale result must not be recorded", got.flow.Err())
	}
}

func TestFreshBookingFailureKeepsSelection(t *testing.T) {
	m := newBookingTestModel()
	m.selection.Toggle(model.Seat{Id: 1, Row: "A", Column: 1})
	if err := m.flow.Start(m.selection.Count()); err != nil {
		t.Fatalf("flow.Start: %v", err)
	}
	m.fetchSeq = 1

	next, _ := m.Update(bookingResultMsg{seq: 1, err: errors.New("seat already reserved")})
	got := next.(appModel)

	if got.state != stateBooking {
		t.Errorf("state = %v, want booking screen with the error shown", got.state)
	}
	if got.flow.State() != booking.Failed {
		t.Errorf("flow state = %v, want Failed", got.flow.State())
	}
	if got.selection.Count() != 1 {
		t.Error("a failed booking must keep the selection for retry")
	}
}

func TestCancelConfirmPinnedWhileBusy(t *testing.T) {
	m := newBookingTestModel()
	m.state = stateConfirmCancel
	m.cancelTarget = 7
	m.cancelBusy = true

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	got := next.(appModel)
	if got.state != stateConfirmCancel {
		t.Errorf("state = %v, keys must be ignored while the cancel is in flight", got.state)
	}

	got.cancelBusy = false
	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	got = next.(appModel)
	if got.state != stateReservations {
		t.Errorf("state = %v, n should keep the reservation once idle", got.state)
	}
}

func TestBuildDateItemsKeepsSelectedDate(t *testing.T) {
	selected := truncateDate(time.Now()).AddDate(0, 0, 20)
	items := buildDateItems(selected)
	if len(items) != 8 {
		t.Fatalf("expected the week plus the out-of-window date, got %d items", len(items))
	}

	last := items[len(items)-1].(dateItem)
	if !last.date.Equal(selected) {
		t.Errorf("selected future date must sort last, got %v", last.date)
	}

	past := truncateDate(time.Now()).AddDate(0, 0, -3)
	items = buildDateItems(past)
	first := items[0].(dateItem)
	if !first.date.Equal(past) {
		t.Errorf("selected past date must sort first, got %v", first.date)
	}
}

func TestBuildReservationItemsNewestFirst(t *testing.T) {
	now := time.Now()
	items := buildReservationItems([]model.Reservation{
		{Id: 1, Timestamp: now.Add(-2 * time.Hour)},
		{Id: 2, Timestamp: now},
		{Id: 3, Timestamp: now.Add(-1 * time.Hour)},
	})

	wantIDs := []int{2, 3, 1}
	for i, want := range wantIDs {
		item := items[i].(reservationItem)
		if item.reservation.Id != want {
			t.Errorf("items[%d].Id = %d, want %d", i, item.reservation.Id, want)
		}
	}
}
