package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinetix/booking"
	"cinetix/model"
	"cinetix/seatmap"
	"cinetix/service"
	"cinetix/session"
)

type appState int

const (
	stateStartup appState = iota
	stateLogin
	stateRegister
	stateLoadingMovies
	stateMovies
	stateMovieDetails
	stateSelectDate
	stateLoadingShowtimes
	stateShowtimes
	stateLoadingSeats
	stateBooking
	stateSelectPayment
	stateLoadingReservations
	stateReservations
	stateConfirmCancel
	stateAdminMenu
	stateMovieForm
	stateShowtimeForm
	stateSeatsForm
	statePromoteForm
	stateLoadingReport
	stateReport
	stateLoadingAdminReservations
	stateAdminReservations
	stateSettings
	stateError
)

type appModel struct {
	client  *service.Client
	session *session.Store
	pricing seatmap.Pricing

	state     appState
	lastState appState
	err       error

	width  int
	height int

	spinner  spinner.Model
	fetchSeq int

	// catalog
	movieList   list.Model
	movies      model.MovieList
	page        int
	perPage     int
	movie       model.Movie
	genreFilter string

	// showtimes
	dateList        list.Model
	showtimeList    list.Model
	date            time.Time
	showtimes       []model.Showtime
	showtime        model.Showtime
	showtimeMovieID int

	// booking
	grid      seatmap.Grid
	selection *seatmap.Selection
	cursorRow int
	cursorCol int
	flow      *booking.Flow
	payList   list.Model

	// reservations
	reservationList list.Model
	reservations    []model.Reservation
	cancelTarget    int
	cancelBusy      bool

	// admin
	adminList      list.Model
	adminResList   list.Model
	report         model.AdminReport
	editingMovieID int

	// forms
	loginForm    form
	registerForm form
	movieForm    form
	showtimeForm form
	seatsForm    form
	promoteForm  form
	settingsForm form

	notice string
}

// New builds the application model around an API client and a session
// store. Both are injected so tests can construct isolated instances.
func New(client *service.Client, sess *session.Store) tea.Model {
	m := appModel{
		client:    client,
		session:   sess,
		pricing:   seatmap.DefaultPricing,
		state:     stateStartup,
		page:      1,
		perPage:   10,
		date:      truncateDate(time.Now()),
		selection: seatmap.NewSelection(),
		flow:      booking.NewFlow(),
	}

	m.movieList = newList("Movies")
	m.showtimeList = newList("Showtimes")
	m.reservationList = newList("My Reservations")
	m.adminList = newList("Admin")
	m.adminResList = newList("All Reservations")
	m.payList = newList("Payment Method")
	m.payList.SetFilteringEnabled(false)
	m.dateList = newList("Select Date")
	m.dateList.SetFilteringEnabled(false)

	m.loginForm = newLoginForm()
	m.registerForm = newRegisterForm()
	m.settingsForm = newSettingsForm(client.BaseURL())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.restoreSessionCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.activeForm() != nil {
			return m.updateForm(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() || m.flow.InFlight() || m.cancelBusy {
			return m, cmd
		}
		return m, nil

	default:
		if next, cmd, handled := m.handleResult(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMovies:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateShowtimes:
		m.showtimeList, cmd = m.showtimeList.Update(msg)
	case stateSelectDate:
		m.dateList, cmd = m.dateList.Update(msg)
	case stateSelectPayment:
		m.payList, cmd = m.payList.Update(msg)
	case stateReservations:
		m.reservationList, cmd = m.reservationList.Update(msg)
	case stateAdminMenu:
		m.adminList, cmd = m.adminList.Update(msg)
	case stateAdminReservations:
		m.adminResList, cmd = m.adminResList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateStartup, stateLoadingMovies, stateLoadingShowtimes, stateLoadingSeats,
		stateLoadingReservations, stateLoadingReport, stateLoadingAdminReservations:
		return header + "\n\n" + m.loadingView()
	case stateLogin:
		return header + "\n\n" + m.loginForm.View()
	case stateRegister:
		return header + "\n\n" + m.registerForm.View()
	case stateMovies:
		return header + "\n\n" + m.movieList.View()
	case stateMovieDetails:
		return header + "\n\n" + m.movieDetailsView()
	case stateSelectDate:
		return header + "\n\n" + m.dateList.View()
	case stateShowtimes:
		return header + "\n\n" + m.showtimeList.View()
	case stateBooking:
		return header + "\n\n" + m.bookingView()
	case stateSelectPayment:
		return header + "\n\n" + m.payList.View()
	case stateReservations:
		return header + "\n\n" + m.reservationList.View()
	case stateConfirmCancel:
		return header + "\n\n" + m.confirmCancelView()
	case stateAdminMenu:
		return header + "\n\n" + m.adminList.View()
	case stateMovieForm:
		return header + "\n\n" + m.movieForm.View()
	case stateShowtimeForm:
		return header + "\n\n" + m.showtimeForm.View()
	case stateSeatsForm:
		return header + "\n\n" + m.seatsForm.View()
	case statePromoteForm:
		return header + "\n\n" + m.promoteForm.View()
	case stateReport:
		return header + "\n\n" + m.reportView()
	case stateAdminReservations:
		return header + "\n\n" + m.adminResList.View()
	case stateSettings:
		return header + "\n\n" + m.settingsForm.View()
	case stateError:
		return header + "\n\n" + errorStyle.Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Cinetix")
	var sub []string
	if m.session.IsAuthenticated() {
		user := m.session.User()
		label := user.Username
		if m.session.IsAdmin() {
			label += " (admin)"
		}
		sub = append(sub, "User: "+label)
	}
	if m.movie.Title != "" && (m.state == stateMovieDetails || m.state == stateShowtimes || m.state == stateBooking || m.state == stateSelectPayment) {
		sub = append(sub, "Movie: "+m.movie.Title)
	}
	if m.state == stateShowtimes || m.state == stateSelectDate {
		sub = append(sub, "Date: "+m.date.Format(time.DateOnly))
	}
	if m.state == stateMovies && m.movies.TotalPages > 1 {
		sub = append(sub, fmt.Sprintf("Page %d/%d", m.movies.CurrentPage, m.movies.TotalPages))
	}
	if m.state == stateBooking || m.state == stateSelectPayment {
		if m.showtime.Id != 0 {
			sub = append(sub, "Showtime: "+m.showtime.StartTime.Format("Mon 02/01 15:04"))
		}
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	noticeLine := ""
	if m.notice != "" {
		noticeLine = "\n" + noticeStyle.Render(m.notice)
	}
	return title + meta + noticeLine + "\n" + hint(m.hints())
}

func (m appModel) hints() string {
	switch m.state {
	case stateLogin:
		return "tab next field • enter submit • ctrl+r register • ctrl+o settings • ctrl+c quit"
	case stateRegister:
		return "tab next field • enter submit • esc back to login • ctrl+c quit"
	case stateMovies:
		base := "enter details • n/p page • g genre • type to filter • ctrl+d pick date • ctrl+r my reservations • ctrl+o settings • ctrl+x logout"
		if m.session.IsAdmin() {
			base += " • ctrl+a admin"
		}
		return base
	case stateMovieDetails:
		base := "s showtimes • esc back"
		if m.session.IsAdmin() {
			base += " • e edit • d delete"
		}
		return base
	case stateShowtimes:
		return "enter pick seats • ctrl+d change date • esc back"
	case stateBooking:
		return "arrows move • space toggle seat • c confirm • esc back"
	case stateSelectPayment:
		return "enter pay & book • esc back"
	case stateReservations:
		return "x cancel reservation • esc back"
	case stateConfirmCancel:
		return "y confirm cancel • n keep reservation"
	case stateAdminMenu:
		return "enter select • esc back"
	case stateMovieForm, stateShowtimeForm, stateSeatsForm, statePromoteForm, stateSettings:
		return "tab next field • enter submit • esc cancel"
	case stateReport, stateAdminReservations:
		return "esc back"
	default:
		return "ctrl+c quit • esc back"
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	// A pending write pins its screen until the result lands; only quit
	// gets through. Letting esc run here would reset the flow and allow a
	// second submission while the first is still in flight.
	if msg.String() != "ctrl+c" {
		if m.state == stateBooking && m.flow.InFlight() {
			return m, nil, true
		}
		if m.state == stateConfirmCancel && m.cancelBusy {
			return m, nil, true
		}
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next, cmd := m.goBack()
		return next, cmd, true
	case "ctrl+x":
		if m.session.IsAuthenticated() {
			m.session.Logout()
			m.notice = "Logged out."
			m.loginForm = newLoginForm()
			m.state = stateLogin
			return m, nil, true
		}
	case "ctrl+o":
		if m.state == stateLogin || m.state == stateMovies {
			m.settingsForm = newSettingsForm(m.client.BaseURL())
			m.lastState = m.state
			m.state = stateSettings
			return m, nil, true
		}
	case "ctrl+r":
		switch m.state {
		case stateLogin:
			m.registerForm = newRegisterForm()
			m.state = stateRegister
			return m, nil, true
		case stateMovies:
			m.state = stateLoadingReservations
			return m, tea.Batch(m.fetchReservationsCmd(), m.spinner.Tick), true
		}
	case "ctrl+a":
		if m.state == stateMovies && m.session.IsAdmin() {
			m.adminList.SetItems(buildAdminItems())
			m.state = stateAdminMenu
			return m, nil, true
		}
	case "ctrl+d":
		if m.state == stateMovies || m.state == stateShowtimes {
			if m.state == stateMovies {
				m.showtimeMovieID = 0
			}
			m.openDatePicker()
			m.lastState = m.state
			m.state = stateSelectDate
			return m, nil, true
		}
	case "n":
		if m.state == stateMovies && !m.movieList.SettingFilter() && m.movies.CurrentPage < m.movies.TotalPages {
			m.page = m.movies.CurrentPage + 1
			m.state = stateLoadingMovies
			return m, tea.Batch(m.fetchMoviesCmd(m.page), m.spinner.Tick), true
		}
	case "p":
		if m.state == stateMovies && !m.movieList.SettingFilter() && m.movies.CurrentPage > 1 {
			m.page = m.movies.CurrentPage - 1
			m.state = stateLoadingMovies
			return m, tea.Batch(m.fetchMoviesCmd(m.page), m.spinner.Tick), true
		}
	case "s":
		if m.state == stateMovieDetails {
			m.showtimeMovieID = m.movie.Id
			m.state = stateLoadingShowtimes
			return m, tea.Batch(m.fetchShowtimesCmd(m.date), m.spinner.Tick), true
		}
	case "g":
		if m.state == stateMovies && !m.movieList.SettingFilter() {
			m.genreFilter = nextGenre(m.genreFilter)
			m.state = stateLoadingMovies
			if m.genreFilter == "" {
				m.notice = ""
				return m, tea.Batch(m.fetchMoviesCmd(1), m.spinner.Tick), true
			}
			m.notice = "Genre: " + m.genreFilter
			return m, tea.Batch(m.searchMoviesCmd(m.genreFilter), m.spinner.Tick), true
		}
	case "e":
		if m.state == stateMovieDetails && m.session.IsAdmin() {
			m.editingMovieID = m.movie.Id
			m.movieForm = newMovieForm(&m.movie)
			m.state = stateMovieForm
			return m, nil, true
		}
	case "d":
		if m.state == stateMovieDetails && m.session.IsAdmin() {
			return m, tea.Batch(m.deleteMovieCmd(m.movie.Id), m.spinner.Tick), true
		}
	case "x":
		if m.state == stateReservations {
			item, ok := m.reservationList.SelectedItem().(reservationItem)
			if !ok {
				return m, nil, true
			}
			m.cancelTarget = item.reservation.Id
			m.state = stateConfirmCancel
			return m, nil, true
		}
	case "y":
		if m.state == stateConfirmCancel && !m.cancelBusy {
			m.cancelBusy = true
			return m, tea.Batch(m.cancelReservationCmd(m.cancelTarget), m.spinner.Tick), true
		}
	}

	if m.state == stateConfirmCancel && (msg.String() == "n" || msg.String() == "esc") {
		m.cancelTarget = 0
		m.state = stateReservations
		return m, nil, true
	}

	if m.state == stateBooking {
		return m.handleBookingKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		return m.handleEnter()
	}
	return m, nil, false
}

func (m appModel) handleEnter() (tea.Model, tea.Cmd, bool) {
	switch m.state {
	case stateMovies:
		item, ok := m.movieList.SelectedItem().(movieItem)
		if !ok {
			return m, nil, true
		}
		m.movie = item.movie
		m.notice = ""
		m.state = stateMovieDetails
		return m, nil, true
	case stateSelectDate:
		item, ok := m.dateList.SelectedItem().(dateItem)
		if !ok {
			return m, nil, true
		}
		m.date = item.date
		m.state = stateLoadingShowtimes
		return m, tea.Batch(m.fetchShowtimesCmd(m.date), m.spinner.Tick), true
	case stateShowtimes:
		item, ok := m.showtimeList.SelectedItem().(showtimeItem)
		if !ok {
			return m, nil, true
		}
		m.showtime = item.showtime
		m.selection.Clear()
		m.flow.Reset()
		m.state = stateLoadingSeats
		return m, tea.Batch(m.fetchSeatsCmd(m.showtime.Id), m.spinner.Tick), true
	case stateSelectPayment:
		item, ok := m.payList.SelectedItem().(paymentItem)
		if !ok {
			return m, nil, true
		}
		if err := m.flow.Start(m.selection.Count()); err != nil {
			m.notice = err.Error()
			m.state = stateBooking
			return m, nil, true
		}
		m.state = stateBooking
		return m, tea.Batch(m.submitBookingCmd(m.showtime.Id, m.selection.IDs(), item.method), m.spinner.Tick), true
	case stateAdminMenu:
		item, ok := m.adminList.SelectedItem().(adminItem)
		if !ok {
			return m, nil, true
		}
		return m.openAdminAction(item.action)
	case stateAdminReservations, stateReservations:
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) openAdminAction(action adminAction) (tea.Model, tea.Cmd, bool) {
	switch action {
	case adminCreateMovie:
		m.editingMovieID = 0
		m.movieForm = newMovieForm(nil)
		m.state = stateMovieForm
	case adminCreateShowtime:
		m.showtimeForm = newShowtimeForm(m.movie.Id)
		m.state = stateShowtimeForm
	case adminGenerateSeats:
		m.seatsForm = newSeatsForm(m.showtime.Id)
		m.state = stateSeatsForm
	case adminViewReport:
		m.state = stateLoadingReport
		return m, tea.Batch(m.fetchReportCmd(), m.spinner.Tick), true
	case adminViewReservations:
		m.state = stateLoadingAdminReservations
		return m, tea.Batch(m.fetchAdminReservationsCmd(), m.spinner.Tick), true
	case adminPromoteUser:
		m.promoteForm = newPromoteForm()
		m.state = statePromoteForm
	}
	return m, nil, true
}

func (m appModel) goBack() (tea.Model, tea.Cmd) {
	m.notice = ""
	switch m.state {
	case stateRegister:
		m.state = stateLogin
	case stateMovieDetails:
		m.state = stateMovies
	case stateSelectDate:
		m.state = m.lastState
	case stateShowtimes:
		if m.showtimeMovieID != 0 {
			m.state = stateMovieDetails
		} else {
			m.state = stateMovies
		}
	case stateBooking:
		m.selection.Clear()
		m.flow.Reset()
		m.state = stateShowtimes
	case stateSelectPayment:
		m.state = stateBooking
	case stateReservations:
		m.state = stateMovies
	case stateConfirmCancel:
		m.state = stateReservations
	case stateAdminMenu:
		m.state = stateMovies
	case stateMovieForm, stateShowtimeForm, stateSeatsForm, statePromoteForm:
		m.state = stateAdminMenu
	case stateReport, stateAdminReservations:
		m.state = stateAdminMenu
	case stateSettings:
		m.state = m.lastState
	case stateError:
		m.state = m.lastState
	default:
		return m, nil
	}
	return m, nil
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateMovies:
		return &m.movieList
	case stateShowtimes:
		return &m.showtimeList
	case stateReservations:
		return &m.reservationList
	case stateAdminMenu:
		return &m.adminList
	case stateAdminReservations:
		return &m.adminResList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateStartup, stateLoadingMovies, stateLoadingShowtimes, stateLoadingSeats,
		stateLoadingReservations, stateLoadingReport, stateLoadingAdminReservations:
		return true
	default:
		return false
	}
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateStartup:
		title = "Checking session"
	case stateLoadingMovies:
		title = "Loading movies"
	case stateLoadingShowtimes:
		title = "Loading showtimes"
	case stateLoadingSeats:
		title = "Loading seats"
	case stateLoadingReservations:
		title = "Loading reservations"
	case stateLoadingReport:
		title = "Loading report"
	case stateLoadingAdminReservations:
		title = "Loading reservations"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Fetching data..."))
}

func (m appModel) movieDetailsView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.movie.Title))
	b.WriteString("\n\n")
	if m.movie.Genre != "" {
		b.WriteString("Genre: " + m.movie.Genre + "\n")
	}
	if m.movie.ReleaseDate != "" {
		b.WriteString("Released: " + m.movie.ReleaseDate + "\n")
	}
	if m.movie.PosterUrl != "" {
		b.WriteString("Poster: " + m.movie.PosterUrl + "\n")
	}
	if m.movie.Description != "" {
		b.WriteString("\n" + m.movie.Description + "\n")
	}
	return b.String()
}

func (m appModel) confirmCancelView() string {
	if m.cancelBusy {
		return fmt.Sprintf("%s Cancelling reservation #%d...", m.spinner.View(), m.cancelTarget)
	}
	return fmt.Sprintf("Cancel reservation #%d?\n\n%s", m.cancelTarget,
		hint("This cannot be undone. Press y to cancel it, n to keep it."))
}

func (m appModel) reportView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Admin Report"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Total reservations:   %d\n", m.report.TotalReservations))
	b.WriteString(fmt.Sprintf("Capacity utilization: %s\n", m.report.CapacityUtilization))
	b.WriteString(fmt.Sprintf("Revenue:              $%.2f\n", m.report.Revenue))
	return b.String()
}

// openDatePicker rebuilds the date list around the current selection and
// puts the cursor on it.
func (m *appModel) openDatePicker() {
	m.dateList.SetItems(buildDateItems(m.date))
	selected := truncateDate(m.date)
	for i, item := range m.dateList.Items() {
		if date, ok := item.(dateItem); ok && date.date.Equal(selected) {
			m.dateList.Select(i)
			break
		}
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.showtimeList.SetSize(m.width, h)
	m.reservationList.SetSize(m.width, h)
	m.adminList.SetSize(m.width, h)
	m.adminResList.SetSize(m.width, h)
	m.payList.SetSize(m.width, h)
	m.dateList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil || !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return false
		}
		// Single letters double as shortcuts on some screens; only free
		// typing beyond the shortcut set feeds the filter.
		if m.isShortcutRune(msg.Runes[0]) && listPtr.FilterValue() == "" {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) isShortcutRune(r rune) bool {
	switch m.state {
	case stateMovies:
		return r == 'n' || r == 'p' || r == 'g'
	case stateReservations:
		return r == 'x'
	default:
		return false
	}
}

// nextGenre cycles through the seeded genres, ending back at "all".
func nextGenre(current string) string {
	if current == "" {
		return model.Genres[0]
	}
	for i, genre := range model.Genres {
		if genre == current && i+1 < len(model.Genres) {
			return model.Genres[i+1]
		}
	}
	return ""
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	listPtr.SetFilterText(listPtr.FilterValue() + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}
