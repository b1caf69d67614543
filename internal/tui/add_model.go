package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

// Step represents the current step in the wizard
type Step int

const (
	StepTitle Step = iota
	StepProject
	StepPriority
	StepEngagement
	StepAssignee
	StepStartDate
	StepDueDate
	StepDescription
	StepSave
)

type formField struct {
	key         string // prefill key
	label       string
	placeholder string
	limit       int
}

var formFields = []formField{
	{"title", "📋 Task Title", "Enter task title... (required)", 200},
	{"project", "📁 Project", "Project name, sets the client (Enter to skip)", 80},
	{"priority", "⚡ Priority", "low/medium/high/urgent or 1-4 (Enter for medium)", 10},
	{"engagement", "🧾 Engagement", "audit, tax, advisory or bookkeeping (Enter to skip)", 20},
	{"assignee", "👤 Assignee", "Team member (Enter to skip)", 60},
	{"start", "🚩 Start Date", "dd/mm/yyyy, yyyy-mm-dd, today, 3 days, 2w (Enter to skip)", 30},
	{"due", "📅 Due Date", "dd/mm/yyyy, yyyy-mm-dd, today, 3 days, 2w (Enter to skip)", 30},
	{"description", "📝 Description", "What needs doing (Enter to skip)", 500},
}

// taskCreatedMsg reports the result of saving the form
type taskCreatedMsg struct {
	task models.Task
	err  error
}

// AddTaskModel represents the TUI model for adding tasks
type AddTaskModel struct {
	session     *state.Session
	ctx         context.Context
	currentStep Step
	inputs      []textinput.Model
	prefilled   map[string]string
	width       int
	height      int

	saving        bool
	completed     bool
	cancelled     bool
	validationErr string
	created       models.Task

	shimmer *ShimmerState

	// Save confirmation modal
	showSaveModal   bool
	saveModalChoice bool // true for Yes, false for No
}

// NewAddTaskModel creates a new add task TUI model
func NewAddTaskModel(ctx context.Context, session *state.Session, prefilled map[string]string) AddTaskModel {
	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = f.limit
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		if v, ok := prefilled[f.key]; ok {
			inputs[i].SetValue(v)
		}
	}
	inputs[0].Focus()

	return AddTaskModel{
		session:     session,
		ctx:         ctx,
		currentStep: StepTitle,
		inputs:      inputs,
		prefilled:   prefilled,
		shimmer:     NewShimmerState(DefaultShimmerConfig()),
		width:       100,
		height:      30,
	}
}

// Init initializes the model
func (m AddTaskModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.Tick(m.shimmer.Interval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	}))
}

// Update handles messages
func (m AddTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		m.shimmer.Advance()
		return m, tea.Tick(m.shimmer.Interval(), func(time.Time) tea.Msg {
			return shimmerTickMsg{}
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		width := min(max((m.width*2/3)-10, 30), 80)
		for i := range m.inputs {
			m.inputs[i].Width = width
		}
		return m, nil

	case taskCreatedMsg:
		m.saving = false
		if msg.err != nil {
			m.validationErr = m.session.UserMessage(msg.err)
			return m, nil
		}
		m.completed = true
		m.created = msg.task
		return m, tea.Quit

	case tea.KeyMsg:
		if m.saving {
			if msg.String() == "ctrl+c" {
				m.cancelled = true
				return m, tea.Quit
			}
			return m, nil
		}
		if m.showSaveModal {
			return m.updateSaveModal(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			if m.currentStep == StepSave {
				return m.prevStep()
			}
			if !m.hasChanges() {
				m.cancelled = true
				return m, tea.Quit
			}
			m.showSaveModal = true
			m.saveModalChoice = true
			return m, nil

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			if err := m.validateStep(m.currentStep); err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

func (m AddTaskModel) updateSaveModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right":
		m.saveModalChoice = !m.saveModalChoice
	case "y", "Y":
		m.saveModalChoice = true
		return m.handleSaveChoice()
	case "n", "N":
		m.saveModalChoice = false
		return m.handleSaveChoice()
	case "enter":
		return m.handleSaveChoice()
	case "esc":
		m.showSaveModal = false
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m AddTaskModel) value(step Step) string {
	return strings.TrimSpace(m.inputs[step].Value())
}

// validateStep checks the field of a step on its own
func (m AddTaskModel) validateStep(step Step) error {
	v := m.value(step)
	snap := m.session.State().Snapshot
	switch step {
	case StepTitle:
		if v == "" {
			return fmt.Errorf("task title is required")
		}
	case StepProject:
		if _, ok := findProject(snap, v); v != "" && !ok {
			return fmt.Errorf("unknown project %q", v)
		}
	case StepPriority:
		if v != "" {
			if _, err := parser.ParsePriority(v); err != nil {
				return err
			}
		}
	case StepEngagement:
		if v != "" {
			if _, err := parser.ParseEngagementType(v); err != nil {
				return err
			}
		}
	case StepStartDate, StepDueDate:
		if v != "" {
			if _, err := parser.ParseDate(v, m.session.Today()); err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}
		}
	}
	return nil
}

func (m AddTaskModel) handleEnter() (tea.Model, tea.Cmd) {
	m.validationErr = ""
	if m.currentStep == StepSave {
		return m.createTask()
	}
	if err := m.validateStep(m.currentStep); err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	return m.nextStep()
}

// nextStep moves to the next step
func (m AddTaskModel) nextStep() (tea.Model, tea.Cmd) {
	m.validationErr = ""
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Focus()
		}
		m.shimmer.Reset()
	}
	return m, textinput.Blink
}

// prevStep moves to the previous step
func (m AddTaskModel) prevStep() (tea.Model, tea.Cmd) {
	m.validationErr = ""
	if m.currentStep > StepTitle {
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		m.inputs[m.currentStep].Focus()
		m.shimmer.Reset()
	}
	return m, textinput.Blink
}

// hasChanges reports whether any field differs from what the form opened with
func (m AddTaskModel) hasChanges() bool {
	for i, f := range formFields {
		if m.value(Step(i)) != strings.TrimSpace(m.prefilled[f.key]) {
			return true
		}
	}
	return false
}

// buildTask turns the form into a creation request, revalidating every field
func (m AddTaskModel) buildTask() (state.NewTask, error) {
	for step := StepTitle; step < StepSave; step++ {
		if err := m.validateStep(step); err != nil {
			return state.NewTask{}, err
		}
	}

	snap := m.session.State().Snapshot
	today := m.session.Today()
	project, _ := findProject(snap, m.value(StepProject))
	in := state.NewTask{
		Title:       m.value(StepTitle),
		ProjectID:   project.ID,
		ClientID:    project.ClientID,
		Description: m.value(StepDescription),
	}
	if v := m.value(StepPriority); v != "" {
		in.Priority, _ = parser.ParsePriority(v)
	}
	if v := m.value(StepEngagement); v != "" {
		in.EngagementType, _ = parser.ParseEngagementType(v)
	}
	if v := m.value(StepAssignee); v != "" {
		in.Assignee = findAssignee(snap, v)
	}
	if v := m.value(StepStartDate); v != "" {
		in.StartDate, _ = parser.ParseDate(v, today)
	}
	if v := m.value(StepDueDate); v != "" {
		in.DueDate, _ = parser.ParseDate(v, today)
	}
	return in, nil
}

// createTask saves the form through the session
func (m AddTaskModel) createTask() (tea.Model, tea.Cmd) {
	in, err := m.buildTask()
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	m.saving = true
	session, ctx := m.session, m.ctx
	return m, func() tea.Msg {
		task, err := session.CreateTask(ctx, in)
		return taskCreatedMsg{task: task, err: err}
	}
}

// handleSaveChoice handles the save confirmation modal response
func (m AddTaskModel) handleSaveChoice() (tea.Model, tea.Cmd) {
	m.showSaveModal = false
	if m.saveModalChoice {
		return m.createTask()
	}
	m.cancelled = true
	return m, tea.Quit
}

// findProject matches a project by id, name or slug
func findProject(snap models.Snapshot, ref string) (models.Project, bool) {
	for _, p := range snap.Projects {
		if p.ID == ref || strings.EqualFold(p.Name, ref) ||
			strings.EqualFold(strings.ReplaceAll(p.Name, " ", "-"), ref) {
			return p, true
		}
	}
	return models.Project{}, false
}

// findAssignee returns a known team member, or a new one by that name
func findAssignee(snap models.Snapshot, name string) models.Assignee {
	for _, a := range snap.Assignees {
		if strings.EqualFold(a.Name, name) {
			return a
		}
	}
	return models.Assignee{Name: name}
}
