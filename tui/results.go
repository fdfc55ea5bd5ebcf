package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"cinetix/model"
	"cinetix/seatmap"
	"cinetix/service"
)

// handleResult routes the typed results of network commands. Responses
// carrying a stale sequence are dropped: the user already navigated on and
// the screen they came for no longer exists.
func (m appModel) handleResult(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case sessionRestoredMsg:
		if msg.authenticated {
			m.state = stateLoadingMovies
			return m, tea.Batch(m.fetchMoviesCmd(m.page), m.spinner.Tick), true
		}
		m.state = stateLogin
		return m, nil, true

	case loginResultMsg:
		m.loginForm.busy = false
		if msg.err != nil {
			m.loginForm.fail(msg.err.Error())
			return m, nil, true
		}
		m.notice = "Welcome back, " + m.session.User().Username + "."
		m.state = stateLoadingMovies
		return m, tea.Batch(m.fetchMoviesCmd(1), m.spinner.Tick), true

	case registerResultMsg:
		m.registerForm.busy = false
		if msg.err != nil {
			m.registerForm.fail(msg.err.Error())
			return m, nil, true
		}
		m.loginForm = newLoginForm()
		m.notice = "Account created. Log in to continue."
		m.state = stateLogin
		return m, nil, true

	case moviesMsg:
		if msg.seq != m.fetchSeq {
			return m, nil, true
		}
		if msg.err != nil {
			return m.failWith(msg.err, stateMovies), nil, true
		}
		m.movies = msg.list
		m.movieList.SetItems(buildMovieItems(msg.list.Movies))
		m.movieList.ResetFilter()
		m.state = stateMovies
		if len(msg.list.Movies) == 0 {
			m.notice = "No movies found."
		}
		return m, nil, true

	case showtimesMsg:
		if msg.seq != m.fetchSeq {
			return m, nil, true
		}
		if msg.err != nil {
			return m.failWith(msg.err, stateMovies), nil, true
		}
		m.showtimes = filterByMovie(msg.showtimes, m.showtimeMovieID)
		m.showtimeList.SetItems(buildShowtimeItems(m.showtimes))
		m.showtimeList.ResetFilter()
		m.state = stateShowtimes
		if len(m.showtimes) == 0 {
			m.notice = "No showtimes on " + m.date.Format("02 Jan") + "."
		} else {
			m.notice = ""
		}
		return m, nil, true

	case seatsMsg:
		if msg.seq != m.fetchSeq {
			return m, nil, true
		}
		if msg.err != nil {
			return m.failWith(msg.err, stateShowtimes), nil, true
		}
		m.grid = seatmap.Build(msg.seats)
		m.cursorRow = 0
		m.cursorCol = 0
		m.state = stateBooking
		return m, nil, true

	case bookingResultMsg:
		if msg.seq != m.fetchSeq {
			return m, nil, true
		}
		if msg.err != nil {
			if next, handled := m.expireOn(msg.err); handled {
				m.flow.Reset()
				return next, nil, true
			}
			m.flow.Fail(msg.err)
			m.state = stateBooking
			return m, nil, true
		}
		m.flow.Succeed()
		m.selection.Clear()
		m.notice = fmt.Sprintf("Reservation #%d created (%s).", msg.reservation.Id, statusLabel(msg.reservation.Status))
		m.state = stateLoadingReservations
		return m, tea.Batch(m.fetchReservationsCmd(), m.spinner.Tick), true

	case reservationsMsg:
		if msg.seq != m.fetchSeq {
			return m, nil, true
		}
		m.cancelBusy = false
		if msg.err != nil {
			return m.failWith(msg.err, stateMovies), nil, true
		}
		m.reservations = msg.reservations
		m.reservationList.SetItems(buildReservationItems(msg.reservations))
		m.state = stateReservations
		if len(msg.reservations) == 0 {
			m.notice = "You have no reservations yet."
		}
		return m, nil, true

	case cancelResultMsg:
		m.cancelBusy = false
		m.cancelTarget = 0
		if msg.err != nil {
			if next, handled := m.expireOn(msg.err); handled {
				return next, nil, true
			}
			m.notice = "Could not cancel: " + msg.err.Error()
			m.state = stateReservations
			return m, nil, true
		}
		m.notice = fmt.Sprintf("Reservation #%d cancelled.", msg.id)
		m.state = stateLoadingReservations
		return m, tea.Batch(m.fetchReservationsCmd(), m.spinner.Tick), true

	case movieSavedMsg:
		m.movieForm.busy = false
		if msg.err != nil {
			if next, handled := m.expireOn(msg.err); handled {
				return next, nil, true
			}
			m.movieForm.fail(msg.err.Error())
			return m, nil, true
		}
		m.applyMovieSave(msg.movie)
		if msg.created {
			m.notice = fmt.Sprintf("Movie %q created.", msg.movie.Title)
			m.state = stateAdminMenu
		} else {
			m.movie = msg.movie
			m.notice = fmt.Sprintf("Movie %q updated.", msg.movie.Title)
			m.state = stateMovieDetails
		}
		return m, nil, true

	case movieDeletedMsg:
		if msg.err != nil {
			if next, handled := m.expireOn(msg.err); handled {
				return next, nil, true
			}
			m.notice = "Could not delete: " + msg.err.Error()
			return m, nil, true
		}
		m.applyMovieDelete(msg.id)
		m.notice = "Movie deleted."
		m.state = stateMovies
		return m, nil, true

	case showtimeCreatedMsg:
		m.showtimeForm.busy = false
		if msg.err != nil {
			if next, handled := m.expireOn(msg.err); handled {
				return next, nil, true
			}
			m.showtimeForm.fail(msg.err.Error())
			return m, nil, true
		}
		m.showtime = msg.showtime
		m.notice = fmt.Sprintf("Showtime #%d scheduled for %s.",
			msg.showtime.Id, msg.showtime.StartTime.Local().Format("02 Jan 15:04"))
		m.seatsForm = newSeatsForm(msg.showtime.Id)
		m.state = stateSeatsForm
		return m, nil, true

	case seatsCreatedMsg:
		m.seatsForm.busy = false
		if msg.err != nil {
			if next, handled := m.expireOn(msg.err); handled {
				return next, nil, true
			}
			m.seatsForm.fail(msg.err.Error())
			return m, nil, true
		}
		m.notice = fmt.Sprintf("%d seats created.", msg.count)
		m.state = stateAdminMenu
		return m, nil, true

	case reportMsg:
		if msg.err != nil {
			return m.failWith(msg.err, stateAdminMenu), nil, true
		}
		m.report = msg.report
		m.state = stateReport
		return m, nil, true

	case adminReservationsMsg:
		if msg.seq != m.fetchSeq {
			return m, nil, true
		}
		if msg.err != nil {
			return m.failWith(msg.err, stateAdminMenu), nil, true
		}
		m.adminResList.SetItems(buildReservationItems(msg.reservations))
		m.state = stateAdminReservations
		return m, nil, true

	case promoteResultMsg:
		m.promoteForm.busy = false
		if msg.err != nil {
			if next, handled := m.expireOn(msg.err); handled {
				return next, nil, true
			}
			m.promoteForm.fail(msg.err.Error())
			return m, nil, true
		}
		m.notice = fmt.Sprintf("User #%d is now an admin.", msg.userID)
		m.state = stateAdminMenu
		return m, nil, true

	case settingsSavedMsg:
		m.settingsForm.busy = false
		if msg.err != nil {
			m.settingsForm.fail(msg.err.Error())
			return m, nil, true
		}
		m.notice = "Backend URL saved."
		if m.lastState == stateMovies {
			m.state = stateLoadingMovies
			return m, tea.Batch(m.fetchMoviesCmd(1), m.spinner.Tick), true
		}
		m.state = m.lastState
		return m, nil, true
	}

	return m, nil, false
}

// failWith routes an error either to the forced-logout path or to the error
// screen with a recovery state for esc.
func (m appModel) failWith(err error, recovery appState) appModel {
	if next, handled := m.expireOn(err); handled {
		return next
	}
	m.err = err
	m.lastState = recovery
	m.state = stateError
	return m
}

// expireOn forces a logout when the backend rejected the credential. Any
// other error is left for the caller.
func (m appModel) expireOn(err error) (appModel, bool) {
	if !service.IsUnauthorized(err) {
		return m, false
	}
	m.session.Expire()
	m.loginForm = newLoginForm()
	m.notice = "Your session has expired. Please log in again."
	m.state = stateLogin
	return m, true
}

// applyMovieSave patches the in-memory catalog so the list reflects the
// write before the next fetch.
func (m *appModel) applyMovieSave(movie model.Movie) {
	for i, existing := range m.movies.Movies {
		if existing.Id == movie.Id {
			m.movies.Movies[i] = movie
			m.movieList.SetItems(buildMovieItems(m.movies.Movies))
			return
		}
	}
	m.movies.Movies = append([]model.Movie{movie}, m.movies.Movies...)
	m.movieList.SetItems(buildMovieItems(m.movies.Movies))
}

func (m *appModel) applyMovieDelete(id int) {
	kept := m.movies.Movies[:0]
	for _, existing := range m.movies.Movies {
		if existing.Id != id {
			kept = append(kept, existing)
		}
	}
	m.movies.Movies = kept
	m.movieList.SetItems(buildMovieItems(m.movies.Movies))
}
