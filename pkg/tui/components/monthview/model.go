// Package monthview renders an interactive month grid driven by a
// picker. It is presentation only: every intent becomes a picker
// event, and the view is drawn from the latest snapshot.
package monthview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/monthpick/pkg/calendar"
	"tableflip.dev/monthpick/pkg/picker"
)

// Styles controls the month view styling.
type Styles struct {
	Title    lipgloss.Style
	Labels   lipgloss.Style
	Day      lipgloss.Style
	Adjacent lipgloss.Style
	Disabled lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	InRange  lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the stock month view styling.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Labels:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Underline(true),
		Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Adjacent: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Cursor:   lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0")),
		InRange:  lipgloss.NewStyle().Background(lipgloss.Color("60")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// PickedMsg is emitted when the user finishes picking: a date in
// single mode, a completed range in range mode.
type PickedMsg struct {
	Date       time.Time
	RangeStart time.Time
	RangeEnd   time.Time
	Range      bool
}

// Model is the Bubble Tea component wrapping one picker instance.
type Model struct {
	picker *picker.Picker
	cursor time.Time

	jump    textinput.Model
	jumping bool

	styles Styles

	width  int
	height int
}

// New builds a month view over p. The picker may be started already;
// if not, Init starts it on the current month.
func New(p *picker.Picker) *Model {
	jump := textinput.New()
	jump.Placeholder = "2006-01"
	jump.Prompt = ""
	jump.SetWidth(10)
	return &Model{
		picker: p,
		jump:   jump,
		styles: DefaultStyles(),
	}
}

// Picker exposes the wrapped picker for the runner to inspect after
// the program exits.
func (m *Model) Picker() *picker.Picker {
	return m.picker
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	s := m.picker.Dispatch(picker.Start{})
	m.cursor = s.Selected
	if m.cursor.IsZero() || !calendar.SameMonth(m.cursor, s.Month) {
		m.cursor = s.Month
	}
	return nil
}

// Update handles cursor movement, month paging, selection, and the
// jump-to-month prompt.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m *Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)
	case "pgup", "H", "[":
		m.page(-1)
	case "pgdown", "L", "]":
		m.page(1)
	case "g":
		m.jumping = true
		m.jump.SetValue("")
		return m, m.jump.Focus()
	case "enter", " ":
		return m.selectCursor()
	}
	return m, nil
}

func (m *Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		return m, nil
	case "enter":
		m.jumping = false
		if target, err := time.Parse("2006-01", strings.TrimSpace(m.jump.Value())); err == nil {
			s := m.picker.Dispatch(picker.JumpToMonth{Month: target})
			m.cursor = s.Month
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// moveCursor shifts the cursor by delta days, paging to the adjacent
// month when the cursor leaves the displayed one.
func (m *Model) moveCursor(delta int) {
	s := m.picker.State()
	next := m.cursor.AddDate(0, 0, delta)
	if calendar.SameMonth(next, s.Month) {
		m.cursor = next
		return
	}
	dir := 1
	if next.Before(s.Month) {
		dir = -1
	}
	before := s.Month
	after := m.pageState(dir)
	if after.Month.Equal(before) {
		return // navigation refused at a bound, keep the cursor put
	}
	m.cursor = next
	if !calendar.SameMonth(m.cursor, after.Month) {
		m.cursor = after.Month
	}
}

// page turns the displayed month. Paging keys are only live when the
// config enables swipe navigation.
func (m *Model) page(dir int) {
	if !m.picker.Config().EnableSwipe {
		return
	}
	before := m.picker.State().Month
	after := m.pageState(dir)
	if after.Month.Equal(before) {
		return
	}
	m.cursor = after.Month
}

func (m *Model) pageState(dir int) picker.State {
	if dir < 0 {
		return m.picker.Dispatch(picker.NavigatePrevious{})
	}
	return m.picker.Dispatch(picker.NavigateNext{})
}

// selectCursor taps the day under the cursor. Taps on non-selectable
// days never complete a pick; the picker would absorb them anyway, but
// its state can already look complete (today selected at start, a
// finished range), so the gate has to sit here. In single mode an
// accepted tap completes the pick; in range mode the pick completes
// when both endpoints are set.
func (m *Model) selectCursor() (tea.Model, tea.Cmd) {
	day, ok := m.dayAt(m.cursor)
	if !ok {
		return m, nil
	}
	cfg := m.picker.Config()
	if !calendar.IsSelectable(day, cfg) {
		return m, nil
	}
	s := m.picker.Dispatch(picker.SelectDate{Day: day})

	if cfg.RangeMode {
		if s.RangeStart != nil && s.RangeEnd != nil {
			return m, pickedCmd(PickedMsg{
				RangeStart: s.RangeStart.Date,
				RangeEnd:   s.RangeEnd.Date,
				Range:      true,
			})
		}
		return m, nil
	}
	return m, pickedCmd(PickedMsg{Date: s.Selected})
}

func pickedCmd(msg PickedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// dayAt finds the grid cell for date in the displayed month's grid.
func (m *Model) dayAt(date time.Time) (calendar.Day, bool) {
	for _, d := range m.picker.State().Weeks.Days() {
		if calendar.SameDate(d.Date, date) {
			return d, true
		}
	}
	return calendar.Day{}, false
}

// View renders the current snapshot.
func (m *Model) View() string {
	s := m.picker.State()
	if len(s.Weeks.Weeks) == 0 {
		return ""
	}
	cfg := m.picker.Config()

	var lines []string
	if cfg.ShowHeader {
		lines = append(lines, m.styles.Title.Render(fmt.Sprintf("%s %d", s.Weeks.Month, s.Weeks.Year)))
	}
	if cfg.ShowWeekdayLabels {
		labels := make([]string, 0, 7)
		for _, l := range s.WeekdayLabels {
			labels = append(labels, l.Weekday().String()[:2])
		}
		lines = append(lines, m.styles.Labels.Render(strings.Join(labels, " ")))
	}

	for _, week := range s.Weeks.Weeks {
		cells := make([]string, 0, 7)
		for _, d := range week {
			cells = append(cells, m.renderDay(d, cfg, s))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	if m.jumping {
		lines = append(lines, "jump to: "+m.jump.View())
	} else {
		lines = append(lines, m.styles.Help.Render(m.helpLine(cfg)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderDay(d calendar.Day, cfg calendar.Config, s picker.State) string {
	if d.Relationship != calendar.InMonth && !cfg.ShowAdjacentDays {
		return "  "
	}
	text := fmt.Sprintf("%2d", d.Date.Day())

	style := m.styles.Day
	switch {
	case d.Relationship != calendar.InMonth:
		style = m.styles.Adjacent
	case !calendar.IsSelectable(d, cfg):
		style = m.styles.Disabled
	case m.isSelected(d, cfg, s):
		style = m.styles.Selected
	case calendar.InRange(d.Date, s.RangeStart, s.RangeEnd):
		style = m.styles.InRange
	}
	if calendar.SameDate(d.Date, m.cursor) && d.Relationship == calendar.InMonth {
		style = m.styles.Cursor
	}
	return style.Render(text)
}

// isSelected unions the endpoint and single-selection predicates; the
// strict interior is styled separately via InRange.
func (m *Model) isSelected(d calendar.Day, cfg calendar.Config, s picker.State) bool {
	if cfg.RangeMode {
		return (s.RangeStart != nil && calendar.SameDate(d.Date, s.RangeStart.Date)) ||
			(s.RangeEnd != nil && calendar.SameDate(d.Date, s.RangeEnd.Date))
	}
	return calendar.SameDate(d.Date, s.Selected)
}

func (m *Model) helpLine(cfg calendar.Config) string {
	parts := []string{"arrows move", "enter pick"}
	if cfg.EnableSwipe {
		parts = append(parts, "[/] page")
	}
	parts = append(parts, "g jump", "q quit")
	return strings.Join(parts, " · ")
}
