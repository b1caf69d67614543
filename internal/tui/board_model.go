package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusErr
)

// Messages
type (
	shimmerTickMsg struct{}
	updateDoneMsg  struct{ res state.UpdateResult }
	searchDoneMsg  struct{ query string }
)

// BoardModel is the interactive kanban board. The board itself lives in the
// session; the model only keeps cursor positions and what is on screen.
type BoardModel struct {
	session *state.Session
	ctx     context.Context
	st      state.State

	keys    boardKeys
	help    help.Model
	shimmer *ShimmerState
	spinner spinner.Model
	search  textinput.Model

	col       int
	rows      []int // selected card per column
	resultRow int
	statIdx   int
	ganttRow  int

	searching     bool // search box has focus
	searchRunning bool
	detail        bool

	status     string
	statusKind statusKind

	width  int
	height int
}

// NewBoardModel creates the board for a loaded session
func NewBoardModel(ctx context.Context, session *state.Session, shimmer ShimmerConfig) BoardModel {
	search := textinput.New()
	search.Placeholder = "e.g. overdue tax returns for Acme"
	search.Prompt = "🔎 "
	search.CharLimit = 200
	search.Width = 50
	search.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	search.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	search.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc

	return BoardModel{
		session: session,
		ctx:     ctx,
		st:      session.State(),
		keys:    newBoardKeys(),
		help:    h,
		shimmer: NewShimmerState(shimmer),
		spinner: sp,
		search:  search,
		rows:    make([]int, len(models.Statuses())),
		width:   120,
		height:  40,
	}
}

func (m BoardModel) tick() tea.Cmd {
	return tea.Tick(m.shimmer.Interval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Init starts the tick that animates the selection and picks up updates
// landing in the session from running commands.
func (m BoardModel) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case shimmerTickMsg:
		m.shimmer.Advance()
		m.refresh()
		return m, m.tick()

	case spinner.TickMsg:
		if !m.searchRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case updateDoneMsg:
		m.refresh()
		if msg.res.Outcome == state.Committed {
			m.setStatus(statusOK, fmt.Sprintf("Saved %q (%s)", msg.res.Task.Title, msg.res.Task.Status))
		} else {
			reason := msg.res.Reason
			if msg.res.Err != nil {
				reason = m.session.UserMessage(msg.res.Err)
			}
			m.setStatus(statusWarn, fmt.Sprintf("Reverted %q: %s", msg.res.Task.Title, reason))
		}
		return m, nil

	case searchDoneMsg:
		m.searchRunning = false
		m.refresh()
		m.resultRow = 0
		// A newer search replaced this one
		if m.st.Search.Query != msg.query {
			return m, nil
		}
		if m.st.Search.Error != "" {
			m.setStatus(statusErr, m.st.Search.Error)
		} else {
			m.setStatus(statusInfo, fmt.Sprintf("%d tasks match %q", len(state.SearchResults(m.st)), msg.query))
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearchInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m BoardModel) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.search.Value())
		m.searching = false
		m.search.Blur()
		if query == "" {
			m.st = m.session.Search(m.ctx, "")
			m.setStatus(statusInfo, "")
			return m, nil
		}
		m.searchRunning = true
		m.setStatus(statusInfo, fmt.Sprintf("Asking the assistant about %q", query))
		return m, tea.Batch(m.searchCmd(query), m.spinner.Tick)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Board):
		m.st = m.session.Dispatch(state.MainViewChanged{View: state.MainBoard})
		return m, nil

	case key.Matches(msg, m.keys.Dash):
		m.st = m.session.Dispatch(state.MainViewChanged{View: state.MainDashboard})
		return m, nil

	case key.Matches(msg, m.keys.Gantt):
		m.st = m.session.Dispatch(state.MainViewChanged{View: state.MainGantt})
		return m, nil

	case key.Matches(msg, m.keys.Mode):
		modes := []board.ViewMode{board.ViewByClient, board.ViewByProject}
		m.st = m.session.Dispatch(state.ViewModeChanged{Mode: cycle(modes, m.st.View.Mode, 1)})
		m.resetCursor()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		var ids []string
		for _, o := range m.st.FilterOptions() {
			ids = append(ids, o.ID)
		}
		if len(ids) == 0 {
			m.setStatus(statusWarn, fmt.Sprintf("No %ss to filter by yet", m.st.View.Mode))
			return m, nil
		}
		m.st = m.session.Dispatch(state.FilterSelected{ID: cycle(ids, m.st.View.FilterID, 1)})
		m.resetCursor()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.st = m.session.Dispatch(state.SortChanged{SortBy: cycle(board.SortModes(), m.st.View.SortBy, 1)})
		m.shimmer.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.st.Search.Query)
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Clear):
		m.detail = false
		switch {
		case m.st.MainView == state.MainDashboard && m.st.SelectedStat != "":
			m.st = m.session.Dispatch(state.StatSelected{})
		case m.st.Search.Query != "":
			m.st = m.session.Search(m.ctx, "")
		}
		m.setStatus(statusInfo, "")
		return m, nil
	}

	switch m.st.MainView {
	case state.MainDashboard:
		return m.handleDashboardKey(msg)
	case state.MainGantt:
		return m.handleGanttKey(msg)
	}
	return m.handleBoardKey(msg)
}

func (m BoardModel) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if !m.showingResults() && m.col > 0 {
			m.col--
			m.shimmer.Reset()
		}
	case key.Matches(msg, m.keys.Right):
		if !m.showingResults() && m.col < len(m.rows)-1 {
			m.col++
			m.shimmer.Reset()
		}
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Select):
		if _, ok := m.selectedTask(); ok {
			m.detail = !m.detail
		}
	case key.Matches(msg, m.keys.Back):
		return m.moveSelected(-1)
	case key.Matches(msg, m.keys.Forward):
		return m.moveSelected(1)
	}
	return m, nil
}

func (m BoardModel) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stats := board.Stats()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.statIdx = max(0, m.statIdx-1)
	case key.Matches(msg, m.keys.Right):
		m.statIdx = min(len(stats)-1, m.statIdx+1)
	case key.Matches(msg, m.keys.Select):
		stat := stats[m.statIdx]
		if m.st.SelectedStat == stat {
			stat = ""
		}
		m.st = m.session.Dispatch(state.StatSelected{Stat: stat})
	}
	return m, nil
}

func (m BoardModel) handleGanttKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(state.Gantt(m.st).Rows)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.ganttRow = max(0, m.ganttRow-1)
	case key.Matches(msg, m.keys.Down):
		m.ganttRow = max(0, min(rows-1, m.ganttRow+1))
	}
	return m, nil
}

// moveSelected sends the selected card one status left or right. The session
// shows the move at once and reverts it if the store refuses.
func (m BoardModel) moveSelected(delta int) (tea.Model, tea.Cmd) {
	t, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	next, ok := shiftStatus(t.Status, delta)
	if !ok {
		return m, nil
	}
	m.setStatus(statusInfo, fmt.Sprintf("Moving %q to %s", t.Title, next))
	session, ctx, id := m.session, m.ctx, t.ID
	return m, func() tea.Msg {
		return updateDoneMsg{res: session.MoveTask(ctx, id, next)}
	}
}

func (m BoardModel) searchCmd(query string) tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		session.Search(ctx, query)
		return searchDoneMsg{query: query}
	}
}

func (m *BoardModel) refresh() {
	m.st = m.session.State()
	m.clampCursor()
}

func (m *BoardModel) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m *BoardModel) resetCursor() {
	for i := range m.rows {
		m.rows[i] = 0
	}
	m.resultRow = 0
	m.detail = false
	m.shimmer.Reset()
}

func (m *BoardModel) moveCursor(delta int) {
	if m.showingResults() {
		m.resultRow = clampIndex(m.resultRow+delta, len(state.SearchResults(m.st)))
	} else {
		col := state.Board(m.st).Columns[m.col]
		m.rows[m.col] = clampIndex(m.rows[m.col]+delta, len(col.Tasks))
	}
	m.shimmer.Reset()
}

// clampCursor keeps every cursor on a card after the board changed under it
func (m *BoardModel) clampCursor() {
	b := state.Board(m.st)
	for i, col := range b.Columns {
		if i < len(m.rows) {
			m.rows[i] = clampIndex(m.rows[i], len(col.Tasks))
		}
	}
	m.resultRow = clampIndex(m.resultRow, len(state.SearchResults(m.st)))
	m.ganttRow = clampIndex(m.ganttRow, len(state.Gantt(m.st).Rows))
}

// showingResults reports whether the board area lists search results
func (m BoardModel) showingResults() bool {
	return m.st.Search.Query != "" && !m.st.Search.Running && m.st.Search.Error == ""
}

func (m BoardModel) selectedTask() (board.TaskWithDetails, bool) {
	if m.showingResults() {
		results := state.SearchResults(m.st)
		if m.resultRow < len(results) {
			return results[m.resultRow], true
		}
		return board.TaskWithDetails{}, false
	}
	cols := state.Board(m.st).Columns
	if m.col >= len(cols) {
		return board.TaskWithDetails{}, false
	}
	tasks := cols[m.col].Tasks
	if m.rows[m.col] < len(tasks) {
		return tasks[m.rows[m.col]], true
	}
	return board.TaskWithDetails{}, false
}

// shiftStatus returns the status delta lanes away, false past either end
func shiftStatus(s models.Status, delta int) (models.Status, bool) {
	statuses := models.Statuses()
	i := slices.Index(statuses, s)
	if i < 0 || i+delta < 0 || i+delta >= len(statuses) {
		return s, false
	}
	return statuses[i+delta], true
}

// cycle returns the item delta places after current, wrapping around. An
// unknown current starts from the first item.
func cycle[T comparable](items []T, current T, delta int) T {
	if len(items) == 0 {
		return current
	}
	i := slices.Index(items, current)
	if i < 0 {
		return items[0]
	}
	n := len(items)
	return items[((i+delta)%n+n)%n]
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// window returns the slice bounds of at most visible items keeping selected in view
func window(n, selected, visible int) (start, end int) {
	if visible <= 0 || n <= visible {
		return 0, n
	}
	start = max(0, selected-visible+1)
	return start, start + visible
}
