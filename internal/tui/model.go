// Package tui is the full-screen Bubble Tea front-end for the task list.
//
// The Model owns no task state of its own: every user event is turned into
// a todo command on the shared Controller and the whole screen is rendered
// again from the controller's state.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/calvinalkan/agent-todo/internal/config"
	"github.com/calvinalkan/agent-todo/internal/todo"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

const (
	labelAdd  = "Add a task"
	labelEdit = "Edit task"
)

// Model is the Bubble Tea model for the task list screen.
type Model struct {
	ctrl   *todo.Controller
	title  Title
	input  textinput.Model
	keys   KeyMap
	help   help.Model
	styles Styles
	focus  focus
	cursor int
	width  int
}

// New returns a Model driving ctrl, configured from cfg.
func New(ctrl *todo.Controller, cfg config.Config) Model {
	styles := NewStyles(cfg.Theme)

	ti := textinput.New()
	ti.Placeholder = labelAdd
	ti.Prompt = "> "
	ti.CharLimit = 0 // no limit
	ti.Width = 40
	ti.Focus()

	m := Model{
		ctrl:   ctrl,
		title:  NewTitle(cfg.Title, styles.Title),
		input:  ti,
		keys:   NewKeyMap(cfg.Keys),
		help:   help.New(),
		styles: styles,
		focus:  focusInput,
	}
	m.syncInput()

	return m
}

// Controller returns the controller the model drives.
func (m Model) Controller() *todo.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-24, 10)
		m.help.Width = msg.Width

		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.FilterAll):
		return m.setFilter(todo.FilterAll), nil
	case key.Matches(msg, m.keys.FilterDone):
		return m.setFilter(todo.FilterDone), nil
	case key.Matches(msg, m.keys.FilterNotDone):
		return m.setFilter(todo.FilterNotDone), nil
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusInput {
			return m.focusList(), nil
		}

		return m.focusInput()
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.Submit()
		m.syncInput()
		m.clampCursor()

		return m, nil
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}

	return m.handleListKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if v := m.input.Value(); v != m.ctrl.State().Draft() {
		m.ctrl.SetDraft(v)
	}

	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ctrl.Rows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.selected(); ok {
			m.ctrl.Toggle(row.Index)
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Edit):
		if row, ok := m.selected(); ok {
			m.ctrl.BeginEdit(row.Index)
			m.syncInput()

			return m.focusInput()
		}
	case key.Matches(msg, m.keys.Delete):
		if row, ok := m.selected(); ok {
			m.ctrl.Delete(row.Index)
			m.syncInput()
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		switch msg.String() {
		case "1":
			return m.setFilter(todo.FilterAll), nil
		case "2":
			return m.setFilter(todo.FilterDone), nil
		case "3":
			return m.setFilter(todo.FilterNotDone), nil
		case "i":
			return m.focusInput()
		case "q", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) setFilter(f todo.Filter) Model {
	m.ctrl.SetFilter(f)
	m.clampCursor()

	return m
}

func (m Model) focusInput() (Model, tea.Cmd) {
	m.focus = focusInput

	return m, m.input.Focus()
}

func (m Model) focusList() Model {
	m.focus = focusList
	m.input.Blur()
	m.clampCursor()

	return m
}

// selected returns the row under the cursor.
func (m Model) selected() (todo.Row, bool) {
	rows := m.ctrl.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return todo.Row{}, false
	}

	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.Rows())

	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}

// syncInput copies the controller's draft into the text field. The draft is
// the source of truth; the field only mirrors it.
func (m *Model) syncInput() {
	s := m.ctrl.State()

	if m.input.Value() != s.Draft() {
		m.input.SetValue(s.Draft())
		m.input.CursorEnd()
	}

	if s.EditMode() {
		m.input.Placeholder = labelEdit
	} else {
		m.input.Placeholder = labelAdd
	}
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.ctrl.State()

	var b strings.Builder

	b.WriteString(m.title.View())
	b.WriteString("\n")
	b.WriteString(m.viewInput(s))
	b.WriteString("\n\n")
	b.WriteString(m.viewHeader(s))
	b.WriteString("\n")
	b.WriteString(m.viewRows(s))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInput(s todo.State) string {
	label := labelAdd
	button := "Add"

	if s.EditMode() {
		label = labelEdit
		button = "Update"
	}

	field := lipgloss.JoinHorizontal(lipgloss.Center,
		m.input.View(),
		"  ",
		m.styles.Button.Render("[ "+button+" ]"),
	)

	return m.styles.Label.Render(label) + "\n" + field
}

func (m Model) viewHeader(s todo.State) string {
	counts := s.Counts()
	heading := m.styles.Header.Render("Tasks") +
		m.styles.Label.Render(fmt.Sprintf(" (%d open, %d done)", counts.Open, counts.Done))

	controls := make([]string, 0, len(todo.Filters))

	for _, f := range todo.Filters {
		if f == s.Filter() {
			controls = append(controls, m.styles.FilterActive.Render("["+f.Label()+"]"))
		} else {
			controls = append(controls, m.styles.Filter.Render(" "+f.Label()+" "))
		}
	}

	filters := m.styles.Label.Render("Filters: ") + strings.Join(controls, " ")

	gap := m.width - lipgloss.Width(heading) - lipgloss.Width(filters)
	if gap < 2 {
		gap = 2
	}

	return heading + strings.Repeat(" ", gap) + filters
}

func (m Model) viewRows(s todo.State) string {
	rows := s.Rows()

	if len(rows) == 0 {
		if s.Len() == 0 {
			return m.styles.Muted.Render("No tasks yet.") + "\n"
		}

		return m.styles.Muted.Render("Nothing matches this filter.") + "\n"
	}

	editIndex, editing := s.EditIndex()

	var b strings.Builder

	for i, row := range rows {
		pointer := "  "
		if m.focus == focusList && i == m.cursor {
			pointer = m.styles.Cursor.Render("› ")
		}

		check := "[ ] "
		style := m.styles.Row

		if row.Done {
			check = "[x] "
			style = m.styles.RowDone
		}

		text := row.Text
		if m.width > 0 {
			text = ansi.Truncate(text, max(m.width-16, 8), "…")
		}

		line := pointer + check + style.Render(text)
		if editing && row.Index == editIndex {
			line += m.styles.Muted.Render("  (editing)")
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
