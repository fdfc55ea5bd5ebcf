package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinetix/model"
	"cinetix/service"
)

// form is a vertical stack of labelled text inputs with one focused at a
// time. Submission and result handling stay with the caller; the form only
// renders, moves focus and carries the inline error.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
	busy   bool
}

type formField struct {
	label       string
	placeholder string
	value       string
	secret      bool
	charLimit   int
}

func newForm(title string, fields ...formField) form {
	f := form{title: title}
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.SetValue(field.value)
		input.CharLimit = field.charLimit
		if input.CharLimit == 0 {
			input.CharLimit = 200
		}
		input.Width = 40
		if field.secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		if i == 0 {
			input.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, input)
	}
	return f
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) setFocus(i int) {
	if i < 0 {
		i = len(f.inputs) - 1
	}
	if i >= len(f.inputs) {
		i = 0
	}
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	f.focus = i
}

func (f *form) fail(msg string) {
	f.errMsg = msg
	f.busy = false
}

var (
	formLabelStyle = lipgloss.NewStyle().Bold(true)
	formTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (f form) View() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render(f.title))
	b.WriteString("\n\n")
	for i, input := range f.inputs {
		b.WriteString(formLabelStyle.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}
	if f.busy {
		b.WriteString(hint("Submitting..."))
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString(errorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *appModel) activeForm() *form {
	switch m.state {
	case stateLogin:
		return &m.loginForm
	case stateRegister:
		return &m.registerForm
	case stateMovieForm:
		return &m.movieForm
	case stateShowtimeForm:
		return &m.showtimeForm
	case stateSeatsForm:
		return &m.seatsForm
	case statePromoteForm:
		return &m.promoteForm
	case stateSettings:
		return &m.settingsForm
	default:
		return nil
	}
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.activeForm()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.state == stateLogin {
			return m, nil
		}
		next, cmd := m.goBack()
		return next, cmd
	case "ctrl+r":
		if m.state == stateLogin {
			m.registerForm = newRegisterForm()
			m.state = stateRegister
			return m, nil
		}
	case "ctrl+o":
		if m.state == stateLogin {
			m.settingsForm = newSettingsForm(m.client.BaseURL())
			m.lastState = m.state
			m.state = stateSettings
			return m, nil
		}
	}

	if f.busy {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return m, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return m, nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.setFocus(f.focus + 1)
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLogin:
		f := &m.loginForm
		f.errMsg = ""
		f.busy = true
		return m, tea.Batch(m.loginCmd(f.value(0), f.inputs[1].Value()), m.spinner.Tick)

	case stateRegister:
		f := &m.registerForm
		f.errMsg = ""
		f.busy = true
		return m, tea.Batch(
			m.registerCmd(f.value(0), f.value(1), f.inputs[2].Value(), f.inputs[3].Value()),
			m.spinner.Tick,
		)

	case stateMovieForm:
		f := &m.movieForm
		if f.value(0) == "" {
			f.fail("title is required")
			return m, nil
		}
		params := service.MovieParams{
			Title:       f.value(0),
			Genre:       f.value(1),
			ReleaseDate: f.value(2),
			Description: f.value(3),
		}
		f.errMsg = ""
		f.busy = true
		return m, tea.Batch(m.saveMovieCmd(m.editingMovieID, params, f.value(4)), m.spinner.Tick)

	case stateShowtimeForm:
		f := &m.showtimeForm
		movieID, err := strconv.Atoi(f.value(0))
		if err != nil || movieID <= 0 {
			f.fail("movie id must be a positive number")
			return m, nil
		}
		start, err := parseShowtimeStart(f.value(1))
		if err != nil {
			f.fail(err.Error())
			return m, nil
		}
		duration, err := strconv.Atoi(f.value(2))
		if err != nil || duration <= 0 {
			f.fail("duration must be a positive number of minutes")
			return m, nil
		}
		f.errMsg = ""
		f.busy = true
		return m, tea.Batch(m.createShowtimeCmd(movieID, start, duration), m.spinner.Tick)

	case stateSeatsForm:
		f := &m.seatsForm
		showtimeID, err := strconv.Atoi(f.value(0))
		if err != nil || showtimeID <= 0 {
			f.fail("showtime id must be a positive number")
			return m, nil
		}
		columns, err := strconv.Atoi(f.value(2))
		if err != nil {
			f.fail("seats per row must be a number")
			return m, nil
		}
		seatNumbers, err := expandSeatNumbers(f.value(1), columns)
		if err != nil {
			f.fail(err.Error())
			return m, nil
		}
		f.errMsg = ""
		f.busy = true
		return m, tea.Batch(m.createSeatsCmd(showtimeID, seatNumbers), m.spinner.Tick)

	case statePromoteForm:
		f := &m.promoteForm
		userID, err := strconv.Atoi(f.value(0))
		if err != nil || userID <= 0 {
			f.fail("user id must be a positive number")
			return m, nil
		}
		f.errMsg = ""
		f.busy = true
		return m, tea.Batch(m.promoteUserCmd(userID), m.spinner.Tick)

	case stateSettings:
		f := &m.settingsForm
		url := f.value(0)
		if url == "" {
			f.fail("api url is required")
			return m, nil
		}
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			f.fail("api url must start with http:// or https://")
			return m, nil
		}
		f.errMsg = ""
		f.busy = true
		return m, m.saveSettingsCmd(url)
	}
	return m, nil
}

func newLoginForm() form {
	return newForm("Log in",
		formField{label: "Username", placeholder: "username"},
		formField{label: "Password", placeholder: "password", secret: true},
	)
}

func newRegisterForm() form {
	return newForm("Create an account",
		formField{label: "Username", placeholder: "at least 3 characters", charLimit: 50},
		formField{label: "Email", placeholder: "you@example.com"},
		formField{label: "Password", placeholder: "at least 6 characters", secret: true},
		formField{label: "Confirm password", placeholder: "repeat the password", secret: true},
	)
}

func newMovieForm(movie *model.Movie) form {
	seed := model.Movie{}
	title := "New movie"
	if movie != nil {
		seed = *movie
		title = "Edit movie"
	}
	return newForm(title,
		formField{label: "Title", value: seed.Title},
		formField{label: "Genre", placeholder: "Action, Comedy, Drama, Horror, Sci-Fi", value: seed.Genre},
		formField{label: "Release date", placeholder: "2006-01-02", value: seed.ReleaseDate},
		formField{label: "Description", value: seed.Description, charLimit: 500},
		formField{label: "Poster (file path or URL)", value: seed.PosterUrl},
	)
}

func newShowtimeForm(movieID int) form {
	value := ""
	if movieID > 0 {
		value = strconv.Itoa(movieID)
	}
	return newForm("New showtime",
		formField{label: "Movie id", value: value},
		formField{label: "Start time", placeholder: "2006-01-02 15:04"},
		formField{label: "Duration (minutes)", placeholder: "120"},
	)
}

func newSeatsForm(showtimeID int) form {
	value := ""
	if showtimeID > 0 {
		value = strconv.Itoa(showtimeID)
	}
	return newForm("Generate seats",
		formField{label: "Showtime id", value: value},
		formField{label: "Rows (letters)", value: defaultSeatRows},
		formField{label: "Seats per row", value: strconv.Itoa(defaultSeatsPerRow)},
	)
}

func newPromoteForm() form {
	return newForm("Promote user",
		formField{label: "User id", placeholder: "numeric user id"},
	)
}

func newSettingsForm(baseURL string) form {
	return newForm("Backend settings",
		formField{label: "API base URL", value: baseURL, charLimit: 300},
	)
}

// Seat layout defaults offered in the admin form; the backend accepts any
// layout, these just prefill the common one.
const (
	defaultSeatRows    = "ABCDEF"
	defaultSeatsPerRow = 8
)

// expandSeatNumbers turns a row letter string and a per-row count into the
// flat seat number list the backend expects, "A1" through the last column of
// the last row.
func expandSeatNumbers(rows string, seatsPerRow int) ([]string, error) {
	rows = strings.ToUpper(strings.TrimSpace(rows))
	if rows == "" {
		return nil, fmt.Errorf("at least one row letter is required")
	}
	if seatsPerRow <= 0 {
		return nil, fmt.Errorf("seats per row must be positive")
	}
	if seatsPerRow > 99 {
		return nil, fmt.Errorf("seats per row must be at most 99")
	}

	seen := make(map[rune]bool)
	var seatNumbers []string
	for _, row := range rows {
		if row < 'A' || row > 'Z' {
			return nil, fmt.Errorf("row %q is not a letter", string(row))
		}
		if seen[row] {
			return nil, fmt.Errorf("row %s appears twice", string(row))
		}
		seen[row] = true
		for col := 1; col <= seatsPerRow; col++ {
			seatNumbers = append(seatNumbers, fmt.Sprintf("%s%d", string(row), col))
		}
	}
	return seatNumbers, nil
}

func parseShowtimeStart(value string) (time.Time, error) {
	layouts := []string{"2006-01-02 15:04", time.RFC3339, "2006-01-02T15:04"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("start time must look like 2006-01-02 15:04")
}
