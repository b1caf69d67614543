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

// statColor is the accent of a dashboard card
func statColor(s board.Stat) lipgloss.Color {
	switch s {
	case board.StatHighPriority:
		return lipgloss.Color(ColorError)
	case board.StatLongPending:
		return lipgloss.Color(ColorWarning)
	}
	return StatusColor(models.Status(s))
}

func (m BoardModel) renderDashboard() string {
	today := m.session.Today()
	dash := state.Dashboard(m.st, today)

	cards := make([]string, 0, len(dash.Cards))
	for i, c := range dash.Cards {
		border := lipgloss.Color(ColorBorder)
		if i == m.statIdx {
			border = lipgloss.Color(ColorAccentBright)
		}
		if c.Stat == m.st.SelectedStat {
			border = statColor(c.Stat)
		}
		count := lipgloss.NewStyle().Bold(true).Foreground(statColor(c.Stat)).Render(fmt.Sprintf("%d", c.Count))
		cards = append(cards, lipgloss.NewStyle().
			Width(14).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Align(lipgloss.Center).
			Render(count+"\n"+mutedStyle.Render(string(c.Stat))))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	out += "\n" + mutedStyle.Render(fmt.Sprintf("Long pending: waiting on the client more than %d days past due. ←/→ pick a card, enter lists its tasks.", dash.LongPendingDays))

	if m.st.SelectedStat == "" {
		return out
	}
	tasks := state.StatTasks(m.st, today)
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(statColor(m.st.SelectedStat)).Render(string(m.st.SelectedStat)))
	if len(tasks) == 0 {
		lines = append(lines, mutedStyle.Render("No tasks"))
	}
	start, end := window(len(tasks), 0, max(1, m.height-16))
	for _, t := range tasks[start:end] {
		due := lipgloss.NewStyle().Foreground(UrgencyColor(board.DueDateUrgency(t.DueDate, today))).
			Render(fmt.Sprintf("%-9s", parser.ShortDue(t.DueDate, today)))
		lines = append(lines, fmt.Sprintf("%s %s %s",
			due,
			textStyle.Render(fmt.Sprintf("%-40s", truncate(t.Title, 40))),
			mutedStyle.Render(fmt.Sprintf("%s · %s", t.ClientName, t.Status))))
	}
	if end < len(tasks) {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("… %d more", len(tasks)-end)))
	}
	return out + "\n" + panelStyle.Render(strings.Join(lines, "\n"))
}

// ganttScale is how many days one chart cell covers so the timeline fits width
func ganttScale(totalDays, width int) int {
	if width <= 0 || totalDays <= width {
		return 1
	}
	return (totalDays + width - 1) / width
}

func (m BoardModel) renderGantt() string {
	g := state.Gantt(m.st)
	if len(g.Rows) == 0 {
		return panelStyle.Render(mutedStyle.Render("Nothing to chart. Pick a client or project with f."))
	}
	if g.TotalDays == 0 {
		return panelStyle.Render(mutedStyle.Render("None of these tasks has a start or due date yet."))
	}

	const labelWidth = 28
	chartWidth := max(10, m.width-labelWidth-8)
	scale := ganttScale(g.TotalDays, chartWidth)
	cells := (g.TotalDays + scale - 1) / scale

	var lines []string
	axis := fmt.Sprintf("%-*s%s", labelWidth, "", g.Start.Format("02/01"))
	if end := g.End.Format("02/01"); cells > 12 {
		axis += strings.Repeat(" ", cells-10) + end
	}
	lines = append(lines, mutedStyle.Render(axis))

	today := m.session.Today()
	todayCell := -1
	if !today.Before(g.Start) && !today.After(g.End) {
		todayCell = g.Start.DaysUntil(today) / scale
	}

	start, end := window(len(g.Rows), m.ganttRow, max(1, m.height-12))
	for i := start; i < end; i++ {
		row := g.Rows[i]
		label := truncate(row.Task.Title, labelWidth-3)
		if row.Dependency.State != board.DependencyNone {
			label = truncate("↳ "+row.Task.Title, labelWidth-3)
		}
		labelStyle := textStyle
		if i == m.ganttRow {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
		}

		barColor := StatusColor(row.Task.Status)
		if row.Dependency.Blocked() {
			barColor = lipgloss.Color(ColorDisabledText)
		}
		from := row.Offset / scale
		to := (row.Offset + row.Span - 1) / scale

		var bar strings.Builder
		for c := 0; c < cells; c++ {
			switch {
			case c >= from && c <= to:
				bar.WriteString(lipgloss.NewStyle().Foreground(barColor).Render("█"))
			case c == todayCell:
				bar.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("│"))
			default:
				bar.WriteString(mutedStyle.Render("·"))
			}
		}
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label))+bar.String())
	}
	if len(g.Links) > 0 {
		lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("↳ waits on a prerequisite (%d links shown), grey bars are blocked", len(g.Links))))
	}
	if scale > 1 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("one cell = %d days", scale)))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}
