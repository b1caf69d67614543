package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

var (
	logoStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	tabStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(ColorSecondaryText))
	activeTab = tabStyle.Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(ColorAccentBright))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)
)

// View renders the TUI
func (m BoardModel) View() string {
	var body string
	switch m.st.MainView {
	case state.MainDashboard:
		body = m.renderDashboard()
	case state.MainGantt:
		body = m.renderGantt()
	default:
		if m.showingResults() {
			body = m.renderResults()
		} else {
			body = m.renderColumns()
		}
		if m.detail {
			if t, ok := m.selectedTask(); ok {
				body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderDetail(t))
			}
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

func (m BoardModel) renderHeader() string {
	tabs := []struct {
		view  state.MainView
		label string
	}{
		{state.MainBoard, "Board"},
		{state.MainDashboard, "Dashboard"},
		{state.MainGantt, "Gantt"},
	}
	parts := []string{logoStyle.Render("sratask") + "  "}
	for _, t := range tabs {
		if t.view == m.st.MainView {
			parts = append(parts, activeTab.Render(t.label))
		} else {
			parts = append(parts, tabStyle.Render(t.label))
		}
	}
	top := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	filter := "none"
	for _, o := range m.st.FilterOptions() {
		if o.ID == m.st.View.FilterID {
			filter = o.Name
		}
	}
	sub := mutedStyle.Render(fmt.Sprintf("%s: ", m.st.View.Mode)) +
		textStyle.Render(filter) +
		mutedStyle.Render("  sort: ") + textStyle.Render(string(m.st.View.SortBy))

	if m.searching {
		sub += "\n" + m.search.View()
	} else if m.searchRunning {
		sub += "\n" + m.spinner.View() + mutedStyle.Render(" searching "+fmt.Sprintf("%q", m.search.Value()))
	} else if q := m.st.Search.Query; q != "" {
		sub += mutedStyle.Render("  search: ") + textStyle.Render(q) + mutedStyle.Render(" (esc clears)")
	}
	return top + "\n" + sub + "\n"
}

func (m BoardModel) renderFooter() string {
	var line string
	if m.status != "" {
		color := ColorSecondaryText
		switch m.statusKind {
		case statusOK:
			color = ColorSuccess
		case statusWarn:
			color = ColorWarning
		case statusErr:
			color = ColorError
		}
		line = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(m.status) + "\n"
	}
	return "\n" + line + m.help.View(m.keys)
}

func (m BoardModel) columnWidth() int {
	n := len(models.Statuses())
	return max(18, (m.width-2*n)/n-2)
}

// visibleCards is how many cards fit a column at the current height
func (m BoardModel) visibleCards() int {
	return max(1, (m.height-12)/4)
}

func (m BoardModel) renderColumns() string {
	b := state.Board(m.st)
	if m.st.View.FilterID == "" {
		return panelStyle.Render(mutedStyle.Render(fmt.Sprintf("No %s selected. Press f to pick one, v to switch mode.", m.st.View.Mode)))
	}

	width := m.columnWidth()
	today := m.session.Today()
	cols := make([]string, 0, len(b.Columns))
	for i, col := range b.Columns {
		var lines []string
		heading := lipgloss.NewStyle().Bold(true).Foreground(StatusColor(col.Status)).Render(col.Title)
		lines = append(lines, heading+mutedStyle.Render(fmt.Sprintf(" %d", len(col.Tasks))), "")

		start, end := window(len(col.Tasks), m.rows[i], m.visibleCards())
		if start > 0 {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("↑ %d more", start)))
		}
		for j := start; j < end; j++ {
			selected := i == m.col && j == m.rows[i]
			lines = append(lines, m.renderCard(col.Tasks[j], selected, width-4, today))
		}
		if end < len(col.Tasks) {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("↓ %d more", len(col.Tasks)-end)))
		}
		if len(col.Tasks) == 0 {
			lines = append(lines, mutedStyle.Render("empty"))
		}

		border := lipgloss.Color(ColorBorder)
		if i == m.col {
			border = lipgloss.Color(ColorAccentBright)
		}
		cols = append(cols, lipgloss.NewStyle().
			Width(width).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m BoardModel) renderCard(t board.TaskWithDetails, selected bool, width int, today models.Date) string {
	var title string
	if selected {
		title = m.shimmer.Render(t.Title, width)
	} else {
		title = textStyle.Render(truncate(t.Title, width))
	}

	due := parser.ShortDue(t.DueDate, today)
	meta := lipgloss.NewStyle().Foreground(PriorityColor(t.Priority)).Render(string(t.Priority)) +
		mutedStyle.Render(" · ") +
		lipgloss.NewStyle().Foreground(UrgencyColor(board.DueDateUrgency(t.DueDate, today))).Render(due)

	lines := []string{title, meta}
	var extra []string
	if t.Assignee.Name != "" {
		extra = append(extra, t.Assignee.Name)
	}
	if done, total := t.SubtaskProgress(); total > 0 {
		extra = append(extra, fmt.Sprintf("☑ %d/%d", done, total))
	}
	if m.st.View.Mode == board.ViewByClient && t.ProjectName != "" {
		extra = append(extra, t.ProjectName)
	}
	if len(extra) > 0 {
		lines = append(lines, mutedStyle.Render(truncate(strings.Join(extra, " · "), width)))
	}
	if dep := state.Dependency(m.st, t.Task); dep.Blocked() {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).
			Render(truncate("⛔ after "+dep.PrerequisiteTitle, width)))
	}
	if m.st.Pending(t.ID) {
		lines = append(lines, mutedStyle.Italic(true).Render("saving…"))
	}

	accent := StatusColor(t.Status)
	if selected {
		accent = lipgloss.Color(ColorAccentBright)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accent).
		PaddingLeft(1).
		MarginBottom(1).
		Render(strings.Join(lines, "\n"))
}

func (m BoardModel) renderResults() string {
	results := state.SearchResults(m.st)
	today := m.session.Today()
	if len(results) == 0 {
		return panelStyle.Render(mutedStyle.Render(fmt.Sprintf("No tasks match %q", m.st.Search.Query)))
	}

	width := max(40, m.width-6)
	var lines []string
	start, end := window(len(results), m.resultRow, max(1, (m.height-12)/2))
	for i := start; i < end; i++ {
		t := results[i]
		marker := "  "
		title := textStyle.Render(truncate(t.Title, width/2))
		if i == m.resultRow {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("▶ ")
			title = m.shimmer.Render(t.Title, width/2)
		}
		status := lipgloss.NewStyle().Foreground(StatusColor(t.Status)).Render(string(t.Status))
		lines = append(lines, marker+title,
			"  "+status+mutedStyle.Render(fmt.Sprintf(" · %s · %s · %s", t.ClientName, t.Priority, parser.ShortDue(t.DueDate, today))))
	}
	return panelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m BoardModel) renderDetail(t board.TaskWithDetails) string {
	today := m.session.Today()
	label := func(s string) string { return mutedStyle.Render(fmt.Sprintf("%-12s", s)) }

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render(t.Title))
	b.WriteString("\n")
	b.WriteString(label("Client") + t.ClientName + "\n")
	b.WriteString(label("Project") + t.ProjectName + "\n")
	b.WriteString(label("Status") + lipgloss.NewStyle().Foreground(StatusColor(t.Status)).Render(string(t.Status)) + "\n")
	if t.EngagementType != "" {
		b.WriteString(label("Engagement") + string(t.EngagementType) + "\n")
	}
	if !t.StartDate.IsZero() {
		b.WriteString(label("Start") + t.StartDate.Format("02/01/2006") + "\n")
	}
	if !t.DueDate.IsZero() {
		b.WriteString(label("Due") + parser.FormatDueDate(t.DueDate, today) + "\n")
	}
	if t.Assignee.Name != "" {
		b.WriteString(label("Assignee") + t.Assignee.Name + "\n")
	}
	if dep := state.Dependency(m.st, t.Task); dep.State != board.DependencyNone {
		b.WriteString(label("After") + fmt.Sprintf("%s (%s)", dep.PrerequisiteTitle, dep.State) + "\n")
	}
	if f := t.Financials; f != nil {
		b.WriteString(label("Fee") + fmt.Sprintf("%.2f, balance due %.2f", f.TotalFee, f.BalanceDue()) + "\n")
	}
	if t.Description != "" {
		b.WriteString("\n" + textStyle.Render(t.Description) + "\n")
	}
	if len(t.Subtasks) > 0 {
		b.WriteString("\n")
		for _, s := range t.Subtasks {
			box := "☐"
			if s.Completed {
				box = "☑"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", box, s.Text))
		}
	}
	if n := len(t.Comments); n > 0 {
		b.WriteString("\n")
		for _, c := range t.Comments[max(0, n-3):] {
			b.WriteString(mutedStyle.Render(c.User.Name+": ") + c.Text + "\n")
		}
	}
	return panelStyle.Width(max(40, m.width-6)).Render(strings.TrimRight(b.String(), "\n"))
}
