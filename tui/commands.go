package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cinetix/model"
	"cinetix/service"
	"cinetix/store"
)

const requestTimeout = 15 * time.Second

type sessionRestoredMsg struct {
	authenticated bool
}

type loginResultMsg struct {
	err error
}

type registerResultMsg struct {
	err error
}

type moviesMsg struct {
	seq       int
	list      model.MovieList
	fromCache bool
	err       error
}

type showtimesMsg struct {
	seq       int
	showtimes []model.Showtime
	err       error
}

type seatsMsg struct {
	seq   int
	seats []model.Seat
	err   error
}

type bookingResultMsg struct {
	seq         int
	reservation model.Reservation
	err         error
}

type reservationsMsg struct {
	seq          int
	reservations []model.Reservation
	err          error
}

type cancelResultMsg struct {
	id  int
	err error
}

type movieSavedMsg struct {
	movie   model.Movie
	created bool
	err     error
}

type movieDeletedMsg struct {
	id  int
	err error
}

type showtimeCreatedMsg struct {
	showtime model.Showtime
	err      error
}

type seatsCreatedMsg struct {
	count int
	err   error
}

type reportMsg struct {
	report model.AdminReport
	err    error
}

type adminReservationsMsg struct {
	seq          int
	reservations []model.Reservation
	err          error
}

type promoteResultMsg struct {
	userID int
	err    error
}

type settingsSavedMsg struct {
	url string
	err error
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func (m *appModel) restoreSessionCmd() tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		_ = sess.Restore(ctx)
		return sessionRestoredMsg{authenticated: sess.IsAuthenticated()}
	}
}

func (m *appModel) loginCmd(username string, password string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return loginResultMsg{err: sess.Login(ctx, username, password)}
	}
}

func (m *appModel) registerCmd(username, email, password, confirm string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return registerResultMsg{err: sess.Register(ctx, username, email, password, confirm)}
	}
}

// fetchMoviesCmd serves a fresh cached page without touching the network and
// refreshes the cache otherwise. Each call bumps the sequence so a response
// that arrives after the user navigated on is dropped.
func (m *appModel) fetchMoviesCmd(page int) tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	client := m.client
	perPage := m.perPage
	return func() tea.Msg {
		if cached, fresh, err := store.LoadMoviePage(page); err == nil && fresh && len(cached.Movies) > 0 {
			return moviesMsg{seq: seq, list: cached, fromCache: true}
		}

		ctx, cancel := withTimeout()
		defer cancel()
		list, err := client.ListMovies(ctx, page, perPage)
		if err != nil {
			// A stale cached page still beats an error screen.
			if cached, _, cacheErr := store.LoadMoviePage(page); cacheErr == nil && len(cached.Movies) > 0 {
				return moviesMsg{seq: seq, list: cached, fromCache: true}
			}
			return moviesMsg{seq: seq, err: err}
		}
		_ = store.SaveMoviePage(page, list)
		return moviesMsg{seq: seq, list: list}
	}
}

func (m *appModel) searchMoviesCmd(genre string) tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		movies, err := client.SearchMovies(ctx, genre, "")
		if err != nil {
			return moviesMsg{seq: seq, err: err}
		}
		return moviesMsg{seq: seq, list: model.MovieList{Movies: movies, TotalPages: 1, CurrentPage: 1}}
	}
}

func (m *appModel) fetchShowtimesCmd(date time.Time) tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		showtimes, err := client.SearchShowtimes(ctx, date)
		return showtimesMsg{seq: seq, showtimes: showtimes, err: err}
	}
}

func (m *appModel) fetchSeatsCmd(showtimeID int) tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		seats, err := client.GetShowtimeSeats(ctx, showtimeID)
		return seatsMsg{seq: seq, seats: seats, err: err}
	}
}

func (m *appModel) submitBookingCmd(showtimeID int, seatIDs []int, paymentMethod string) tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		reservation, err := client.CreateReservation(ctx, showtimeID, seatIDs, paymentMethod, "")
		return bookingResultMsg{seq: seq, reservation: reservation, err: err}
	}
}

func (m *appModel) fetchReservationsCmd() tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		reservations, err := client.MyReservations(ctx)
		return reservationsMsg{seq: seq, reservations: reservations, err: err}
	}
}

func (m *appModel) cancelReservationCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return cancelResultMsg{id: id, err: client.CancelReservation(ctx, id)}
	}
}

// saveMovieCmd creates or updates a movie. A local poster path is uploaded
// first and the returned URL takes the place of the path.
func (m *appModel) saveMovieCmd(id int, params service.MovieParams, posterPath string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		if posterPath != "" {
			url, err := uploadPoster(ctx, client, posterPath)
			if err != nil {
				return movieSavedMsg{err: err}
			}
			params.PosterUrl = url
		}

		var movie model.Movie
		var err error
		created := id == 0
		if created {
			movie, err = client.CreateMovie(ctx, params)
		} else {
			movie, err = client.UpdateMovie(ctx, id, params)
		}
		if err != nil {
			return movieSavedMsg{err: err}
		}
		_ = store.PatchCachedMovie(movie)
		return movieSavedMsg{movie: movie, created: created}
	}
}

func uploadPoster(ctx context.Context, client *service.Client, path string) (string, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return "", errors.New("cannot open poster file: " + err.Error())
	}
	defer file.Close()
	return client.UploadPoster(ctx, filepath.Base(path), file)
}

func (m *appModel) deleteMovieCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		err := client.DeleteMovie(ctx, id)
		if err == nil {
			_ = store.DropCachedMovie(id)
		}
		return movieDeletedMsg{id: id, err: err}
	}
}

func (m *appModel) createShowtimeCmd(movieID int, startTime time.Time, duration int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		showtime, err := client.CreateShowtime(ctx, movieID, startTime, duration)
		return showtimeCreatedMsg{showtime: showtime, err: err}
	}
}

func (m *appModel) createSeatsCmd(showtimeID int, seatNumbers []string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		err := client.CreateSeats(ctx, showtimeID, seatNumbers)
		return seatsCreatedMsg{count: len(seatNumbers), err: err}
	}
}

func (m *appModel) fetchReportCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		report, err := client.AdminReport(ctx)
		return reportMsg{report: report, err: err}
	}
}

func (m *appModel) fetchAdminReservationsCmd() tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		reservations, err := client.AdminReservations(ctx)
		return adminReservationsMsg{seq: seq, reservations: reservations, err: err}
	}
}

func (m *appModel) promoteUserCmd(userID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return promoteResultMsg{userID: userID, err: client.PromoteUser(ctx, userID)}
	}
}

func (m *appModel) saveSettingsCmd(url string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := store.SaveBaseURL(url); err != nil {
			return settingsSavedMsg{err: err}
		}
		client.SetBaseURL(url)
		return settingsSavedMsg{url: url}
	}
}
