package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinetix/seatmap"
)

var (
	seatFreeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	seatReservedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	seatSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	seatCursorStyle   = lipgloss.NewStyle().Reverse(true).Bold(true)
	screenStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7"))
	rowLabelStyle     = lipgloss.NewStyle().Faint(true)
)

// renderSeatGrid draws the hall, rows lettered on both sides and a screen bar
// on top. The cursor wins over selection when both apply to a cell.
func renderSeatGrid(grid seatmap.Grid, selection *seatmap.Selection, cursorRow int, cursorCol int) string {
	rows := grid.Rows()
	if len(rows) == 0 {
		return hint("No seats have been created for this showtime yet.")
	}

	cellWidth := 2
	maxCols := 0
	for _, row := range rows {
		if len(row.Seats) > maxCols {
			maxCols = len(row.Seats)
		}
		for _, seat := range row.Seats {
			if w := len(seat.Label()); w > cellWidth {
				cellWidth = w
			}
		}
	}

	var b strings.Builder
	rowWidth := maxCols * (cellWidth + 3)
	b.WriteString("   " + screenStyle.Render(center("SCREEN", rowWidth)) + "\n\n")

	for rowIndex, row := range rows {
		b.WriteString(rowLabelStyle.Render(row.Label) + "  ")
		for colIndex, seat := range row.Seats {
			label := fmt.Sprintf("%*s", cellWidth, seat.Label())
			cell := "[" + label + "]"
			switch {
			case rowIndex == cursorRow && colIndex == cursorCol:
				cell = seatCursorStyle.Render(cell)
			case selection.Has(seat.Id):
				cell = seatSelectedStyle.Render(cell)
			case seat.IsReserved:
				cell = seatReservedStyle.Render(cell)
			default:
				cell = seatFreeStyle.Render(cell)
			}
			b.WriteString(cell + " ")
		}
		b.WriteString(" " + rowLabelStyle.Render(row.Label) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(seatFreeStyle.Render("[  ]") + " available  ")
	b.WriteString(seatSelectedStyle.Render("[  ]") + " selected  ")
	b.WriteString(seatReservedStyle.Render("[  ]") + " reserved\n")
	return b.String()
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// renderPriceSummary is the running total under the grid. An empty selection
// shows a prompt instead of zeros.
func renderPriceSummary(pricing seatmap.Pricing, selection *seatmap.Selection, grid seatmap.Grid) string {
	if selection.Count() == 0 {
		return hint("Select seats with space, then press c to confirm.")
	}
	summary := pricing.Summarize(selection.Count())
	labels := strings.Join(selection.Labels(grid), ", ")
	return fmt.Sprintf(
		"Seats: %s\n%d x $%.2f = $%.2f  +  booking fee $%.2f\nTotal: $%.2f",
		labels, summary.Seats, pricing.SeatPrice, summary.Subtotal, summary.Fee, summary.Total,
	)
}

func (m appModel) bookingView() string {
	var b strings.Builder
	b.WriteString(renderSeatGrid(m.grid, m.selection, m.cursorRow, m.cursorCol))
	b.WriteString("\n")

	counts := m.grid.CountSeats()
	b.WriteString(hint(fmt.Sprintf("%d of %d seats available", counts.Available, counts.Total)))
	b.WriteString("\n\n")
	b.WriteString(renderPriceSummary(m.pricing, m.selection, m.grid))
	b.WriteString("\n")

	if m.flow.InFlight() {
		b.WriteString("\n" + m.spinner.View() + " Booking your seats...\n")
	}
	if err := m.flow.Err(); err != nil {
		b.WriteString("\n" + errorStyle.Render(err.Error()) + "\n")
		b.WriteString(hint("Your selection is kept. Press c to try again.") + "\n")
	}
	return b.String()
}

func (m appModel) handleBookingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if m.flow.InFlight() {
		return m, nil, true
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1, 0)
		return m, nil, true
	case "down", "j":
		m.moveCursor(1, 0)
		return m, nil, true
	case "left", "h":
		m.moveCursor(0, -1)
		return m, nil, true
	case "right", "l":
		m.moveCursor(0, 1)
		return m, nil, true
	case " ", "space":
		if seat, ok := m.grid.SeatAt(m.cursorRow, m.cursorCol); ok {
			if !m.selection.Toggle(seat) {
				m.notice = fmt.Sprintf("Seat %s is already reserved.", seat.Label())
			} else {
				m.notice = ""
			}
		}
		return m, nil, true
	case "c", "enter":
		if m.selection.Count() == 0 {
			m.notice = "Select at least one seat first."
			return m, nil, true
		}
		m.notice = ""
		m.payList.SetItems(buildPaymentItems())
		m.state = stateSelectPayment
		return m, nil, true
	}
	return m, nil, true
}

// moveCursor clamps to the grid, re-clamping the column when rows have
// different lengths.
func (m *appModel) moveCursor(dRow int, dCol int) {
	rows := m.grid.Rows()
	if len(rows) == 0 {
		return
	}
	m.cursorRow += dRow
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if m.cursorRow >= len(rows) {
		m.cursorRow = len(rows) - 1
	}
	m.cursorCol += dCol
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if last := len(rows[m.cursorRow].Seats) - 1; m.cursorCol > last {
		m.cursorCol = last
	}
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
}
