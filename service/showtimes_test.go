package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestCreateShowtime_PayloadShape(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/showtimes" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 9, "movie_id": 3, "start_time": "2026-09-01T19:30:00Z", "duration": 120}`))
	})

	start := time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC)
	showtime, err := client.CreateShowtime(context.Background(), 3, start, 120)
	if err != nil {
		t.Fatalf("CreateShowtime returned error: %v", err)
	}
	if showtime.Id != 9 {
		t.Errorf("showtime id = %d, want 9", showtime.Id)
	}
	if got["movie_id"] != float64(3) {
		t.Errorf("movie_id = %v, want 3", got["movie_id"])
	}
	if got["start_time"] != "2026-09-01T19:30:00Z" {
		t.Errorf("start_time = %v, want RFC3339", got["start_time"])
	}
	if got["duration"] != float64(120) {
		t.Errorf("duration = %v, want 120", got["duration"])
	}
}

func TestCreateShowtime_RejectsBadInputLocally(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made")
	})

	if _, err := client.CreateShowtime(context.Background(), 0, time.Now(), 120); err == nil {
		t.Error("missing movie id must fail")
	}
	if _, err := client.CreateShowtime(context.Background(), 3, time.Now(), 0); err == nil {
		t.Error("zero duration must fail")
	}
}

func TestSearchShowtimes_DateQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/showtimes/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2026-09-01" {
			t.Errorf("date query = %q, want 2026-09-01", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "movie_id": 3, "start_time": "2026-09-01T19:30:00Z", "duration": 90}]`))
	})

	date := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	showtimes, err := client.SearchShowtimes(context.Background(), date)
	if err != nil {
		t.Fatalf("SearchShowtimes returned error: %v", err)
	}
	if len(showtimes) != 1 || showtimes[0].Duration != 90 {
		t.Fatalf("unexpected showtimes: %+v", showtimes)
	}
}

func TestGetShowtimeSeats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/showtimes/7/seats" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "seat_number": "A1", "row": "A", "column": 1, "is_reserved": false},
			{"id": 2, "seat_number": "A2", "row": "A", "column": 2, "is_reserved": true}
		]`))
	})

	seats, err := client.GetShowtimeSeats(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetShowtimeSeats returned error: %v", err)
	}
	if len(seats) != 2 {
		t.Fatalf("expected 2 seats, got %d", len(seats))
	}
	if !seats[1].IsReserved {
		t.Error("second seat should be reserved")
	}
}

func TestCreateSeats_PayloadShape(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/seats" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := client.CreateSeats(context.Background(), 7, []string{"A1", "A2"})
	if err != nil {
		t.Fatalf("CreateSeats returned error: %v", err)
	}
	if got["showtime_id"] != float64(7) {
		t.Errorf("showtime_id = %v, want 7", got["showtime_id"])
	}
	numbers, ok := got["seat_numbers"].([]any)
	if !ok || len(numbers) != 2 || numbers[0] != "A1" {
		t.Errorf("seat_numbers = %v", got["seat_numbers"])
	}
}

func TestCreateSeats_EmptyBatchRejectedLocally(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made")
	})
	if err := client.CreateSeats(context.Background(), 7, nil); err == nil {
		t.Error("empty seat batch must fail before the network")
	}
}
