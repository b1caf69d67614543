package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
)

// View renders the TUI
func (m AddTaskModel) View() string {
	if m.cancelled || m.completed {
		return ""
	}

	if m.width < 85 {
		return m.renderSmallLayout()
	}

	rightWidth := 44
	leftWidth := m.width - rightWidth - 4

	leftStyle := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)
	rightStyle := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height - 2).
		Padding(1)

	mainView := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(m.renderWizard()),
		" ",
		rightStyle.Render(m.renderPreview()),
	)
	if m.showSaveModal {
		return m.renderSaveModal()
	}
	return mainView
}

// renderWizard renders the step list and the current input
func (m AddTaskModel) renderWizard() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render("📝 New Task"))
	b.WriteString("\n\n")

	current := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	done := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	skipped := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	future := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i, f := range formFields {
		step := Step(i)
		label := strings.TrimSpace(strings.SplitN(f.label, " ", 2)[1])
		switch {
		case step == m.currentStep:
			b.WriteString(current.Render("▶ "+label) + "\n")
		case step < m.currentStep && m.value(step) != "":
			b.WriteString(done.Render("✓ "+label) + "\n")
		case step < m.currentStep:
			b.WriteString(skipped.Render("  "+label) + "\n")
		default:
			b.WriteString(future.Render("  "+label) + "\n")
		}
	}
	b.WriteString("\n")
	if m.currentStep == StepSave {
		b.WriteString(current.Render("▶ 💾 Save") + "\n\n")
		if m.saving {
			b.WriteString("Saving...")
		} else {
			b.WriteString("Press Enter to save task")
		}
	} else {
		b.WriteString(future.Render("  💾 Save") + "\n\n")
		f := formFields[m.currentStep]
		b.WriteString(m.shimmer.Render(f.label, 40) + "\n")
		b.WriteString(m.inputs[m.currentStep].View())
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1).
			Render("❌ " + m.validationErr))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("Enter: Next | Tab/↓: Next | Shift+Tab/↑: Back | Esc: Cancel"))
	return b.String()
}

// previewLines describes the task as it would be saved
func (m AddTaskModel) previewLines() [][2]string {
	snap := m.session.State().Snapshot
	today := m.session.Today()

	title := m.value(StepTitle)
	if title == "" {
		title = "(untitled)"
	}
	lines := [][2]string{{"Title", title}, {"Status", "To Do"}}

	if v := m.value(StepProject); v != "" {
		if p, ok := findProject(snap, v); ok {
			client := ""
			for _, c := range snap.Clients {
				if c.ID == p.ClientID {
					client = c.Name
				}
			}
			lines = append(lines, [2]string{"Client", client}, [2]string{"Project", p.Name})
		} else {
			lines = append(lines, [2]string{"Project", v + " (unknown)"})
		}
	}

	priority := "Medium"
	if p, err := parser.ParsePriority(m.value(StepPriority)); err == nil && m.value(StepPriority) != "" {
		priority = string(p)
	}
	lines = append(lines, [2]string{"Priority", priority})

	if e, err := parser.ParseEngagementType(m.value(StepEngagement)); err == nil && m.value(StepEngagement) != "" {
		lines = append(lines, [2]string{"Engagement", string(e)})
	}
	if v := m.value(StepAssignee); v != "" {
		lines = append(lines, [2]string{"Assignee", findAssignee(snap, v).Name})
	}
	if d, err := parser.ParseDate(m.value(StepStartDate), today); err == nil && m.value(StepStartDate) != "" {
		lines = append(lines, [2]string{"Start", d.Format("02/01/2006")})
	}
	if d, err := parser.ParseDate(m.value(StepDueDate), today); err == nil && m.value(StepDueDate) != "" {
		lines = append(lines, [2]string{"Due", parser.FormatDueDate(d, today)})
	}
	if v := m.value(StepDescription); v != "" {
		lines = append(lines, [2]string{"Description", v})
	}
	return lines
}

// renderPreview renders the live preview panel
func (m AddTaskModel) renderPreview() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain)).Render("Preview"))
	b.WriteString("\n\n")
	for _, l := range m.previewLines() {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-12s", l[0])))
		b.WriteString(textStyle.Render(truncate(l[1], 30)))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Width(40).
		Render(strings.TrimRight(b.String(), "\n"))
}

// renderSmallLayout stacks the wizard and a short preview for narrow terminals
func (m AddTaskModel) renderSmallLayout() string {
	var preview []string
	for _, l := range m.previewLines() {
		preview = append(preview, fmt.Sprintf("%s: %s", l[0], l[1]))
	}
	if m.showSaveModal {
		return m.renderSaveModal()
	}
	return m.renderWizard() + "\n\n" + mutedStyle.Render(strings.Join(preview, " | "))
}

// renderSaveModal renders the save confirmation modal
func (m AddTaskModel) renderSaveModal() string {
	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	if m.saveModalChoice {
		yesStyle = yesStyle.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	} else {
		noStyle = noStyle.
			Background(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	}

	var content strings.Builder
	content.WriteString("Save this task?\n\n")
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, yesStyle.Render("Yes"), "   ", noStyle.Render("No")))
	content.WriteString("\n\n← → or Y/N to choose, Enter to confirm\nEsc to keep editing")

	modal := lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Align(lipgloss.Center).
		Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
