package state

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// Store persists tasks and settings. Returned tasks are authoritative.
type Store interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetProfile(ctx context.Context) (models.Profile, error)
	SetLongPendingDays(ctx context.Context, days int) (models.Profile, error)
}

// Searcher picks the ids of the tasks matching a free-text query
type Searcher interface {
	FindTasks(ctx context.Context, query string, tasks []board.SearchRecord, today models.Date) ([]string, error)
}

// Suggester proposes subtasks and titles
type Suggester interface {
	GenerateSubtasks(ctx context.Context, title, description string) ([]string, error)
	GenerateTitle(ctx context.Context, description string) (string, error)
}

// SQLFormatter pretty-prints SQL
type SQLFormatter interface {
	FormatSQL(ctx context.Context, query string) (string, error)
}

// Options configures a Session. Nil assistants disable the matching features.
type Options struct {
	View            board.View
	LongPendingDays int
	Searcher        Searcher
	Suggester       Suggester
	Formatter       SQLFormatter
	Today           func() models.Date
	Now             func() time.Time
	NewID           func() string
	// UserMessage turns an assistant error into text for the user
	UserMessage func(error) string
}

// Session owns the current State and runs the transitions that talk to the
// store or the assistant. It is safe for concurrent use.
type Session struct {
	mu    sync.Mutex
	state State

	store     Store
	searcher  Searcher
	suggester Suggester
	formatter SQLFormatter

	today       func() models.Date
	now         func() time.Time
	newID       func() string
	userMessage func(error) string
}

// NewSession creates a session with an empty snapshot; call Load to fill it
func NewSession(store Store, opts Options) *Session {
	s := &Session{
		state:       New(opts.View, opts.LongPendingDays),
		store:       store,
		searcher:    opts.Searcher,
		suggester:   opts.Suggester,
		formatter:   opts.Formatter,
		today:       opts.Today,
		now:         opts.Now,
		newID:       opts.NewID,
		userMessage: opts.UserMessage,
	}
	if s.today == nil {
		s.today = models.Today
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	if s.userMessage == nil {
		s.userMessage = func(err error) string { return err.Error() }
	}
	return s
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Today is the date the session evaluates urgency against
func (s *Session) Today() models.Date {
	return s.today()
}

// Dispatch applies a UI event and returns the new state
func (s *Session) Dispatch(e Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, e)
	return s.state
}

// Load fetches the snapshot and the profile settings from the store
func (s *Session) Load(ctx context.Context) error {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	s.Dispatch(SnapshotLoaded{Snapshot: snap})
	s.Dispatch(LongPendingDaysChanged{Days: profile.LongPendingDays})
	return nil
}

// NewTask is the input for creating a task
type NewTask struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Priority       models.Priority       `json:"priority"`
	StartDate      models.Date           `json:"start_date"`
	DueDate        models.Date           `json:"due_date"`
	ClientID       string                `json:"client_id"`
	ProjectID      string                `json:"project_id"`
	EngagementType models.EngagementType `json:"engagement_type"`
	Assignee       models.Assignee       `json:"assignee"`
	DependsOn      string                `json:"depends_on"`
	Subtasks       []string              `json:"subtasks"`
	TotalFee       float64               `json:"total_fee"`
}

// CreateTask validates and stores a new task in To Do, then prepends it
func (s *Session) CreateTask(ctx context.Context, in NewTask) (models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, ValidationError{Field: "title", Reason: "is required"}
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !in.Priority.IsValid() {
		return models.Task{}, ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", in.Priority)}
	}
	if in.EngagementType != "" && !in.EngagementType.IsValid() {
		return models.Task{}, ValidationError{Field: "engagement_type", Reason: fmt.Sprintf("unknown value %q", in.EngagementType)}
	}

	current := s.State()
	clientID, err := resolveClient(current.Snapshot, in.ClientID, in.ProjectID)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:             s.newID(),
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		Priority:       in.Priority,
		Status:         models.StatusToDo,
		StartDate:      in.StartDate,
		DueDate:        in.DueDate,
		ClientID:       clientID,
		ProjectID:      in.ProjectID,
		EngagementType: in.EngagementType,
		Assignee:       in.Assignee,
		DependsOn:      in.DependsOn,
		Subtasks:       []models.Subtask{},
		Comments:       []models.Comment{},
		Attachments:    []models.Attachment{},
	}
	for _, text := range in.Subtasks {
		if text = strings.TrimSpace(text); text != "" {
			task.Subtasks = append(task.Subtasks, models.Subtask{ID: s.newID(), Text: text})
		}
	}
	if in.TotalFee > 0 {
		task.Financials = &models.Financials{TotalFee: in.TotalFee}
	}
	if err := board.ValidateDependency(task, current.Snapshot.Tasks); err != nil {
		return models.Task{}, err
	}

	created, err := s.store.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	s.Dispatch(TaskCreated{Task: created})
	return created, nil
}

// resolveClient derives the client from the project when only the project is given
// and rejects a project that belongs to another client
func resolveClient(snap models.Snapshot, clientID, projectID string) (string, error) {
	if projectID == "" {
		return clientID, nil
	}
	i := slices.IndexFunc(snap.Projects, func(p models.Project) bool { return p.ID == projectID })
	if i < 0 {
		return "", ValidationError{Field: "project_id", Reason: fmt.Sprintf("unknown project %q", projectID)}
	}
	project := snap.Projects[i]
	if clientID == "" {
		return project.ClientID, nil
	}
	if clientID != project.ClientID {
		return "", ValidationError{Field: "project_id", Reason: fmt.Sprintf("project %q belongs to another client", project.Name)}
	}
	return clientID, nil
}

// Outcome is how an optimistic update ended
type Outcome string

const (
	Committed  Outcome = "committed"
	RolledBack Outcome = "rolled_back"
)

// UpdateResult reports the end of an optimistic update. Task is the version
// now on the board.
type UpdateResult struct {
	Outcome Outcome     `json:"outcome"`
	Task    models.Task `json:"task"`
	Reason  string      `json:"reason,omitempty"`
	Err     error       `json:"-"`
}

func rejected(task models.Task, err error) UpdateResult {
	return UpdateResult{Outcome: RolledBack, Task: task, Reason: err.Error(), Err: err}
}

// UpdateTask shows the edit immediately, stores it and then either keeps the
// stored version or restores the previous one.
func (s *Session) UpdateTask(ctx context.Context, task models.Task) UpdateResult {
	s.mu.Lock()
	previous, ok := s.state.FindTask(task.ID)
	if !ok {
		s.mu.Unlock()
		return rejected(task, TaskNotFoundError{ID: task.ID})
	}
	if err := validateEdit(task, previous, s.state.Snapshot); err != nil {
		s.mu.Unlock()
		return rejected(previous, err)
	}
	s.state = Reduce(s.state, TaskTentativelyUpdated{Task: task})
	s.mu.Unlock()

	stored, err := s.store.UpdateTask(ctx, task)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = Reduce(s.state, TaskRolledBack{ID: task.ID})
		current, _ := s.state.FindTask(task.ID)
		err = fmt.Errorf("failed to update task: %w", err)
		return UpdateResult{Outcome: RolledBack, Task: current, Reason: err.Error(), Err: err}
	}
	s.state = Reduce(s.state, TaskCommitted{Task: stored})
	return UpdateResult{Outcome: Committed, Task: stored}
}

// validateEdit checks the edited fields. A stored link is only rechecked when
// the edit changes it, so tasks with a dangling prerequisite stay editable.
func validateEdit(task, previous models.Task, snap models.Snapshot) error {
	if strings.TrimSpace(task.Title) == "" {
		return ValidationError{Field: "title", Reason: "is required"}
	}
	if !task.Status.IsValid() {
		return ValidationError{Field: "status", Reason: fmt.Sprintf("unknown value %q", task.Status)}
	}
	if !task.Priority.IsValid() {
		return ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", task.Priority)}
	}
	if task.DependsOn == previous.DependsOn && task.ProjectID == previous.ProjectID {
		return nil
	}
	err := board.ValidateDependency(task, snap.Tasks)
	var missing board.PrerequisiteNotFoundError
	if task.DependsOn == previous.DependsOn && errors.As(err, &missing) {
		return nil
	}
	return err
}

// EditTask applies edit to a copy of the task and updates it. Tasks waiting on
// an unfinished prerequisite cannot be edited.
func (s *Session) EditTask(ctx context.Context, id string, edit func(*models.Task)) UpdateResult {
	current := s.State()
	task, ok := current.FindTask(id)
	if !ok {
		return rejected(models.Task{ID: id}, TaskNotFoundError{ID: id})
	}
	if dep := Dependency(current, task); dep.Blocked() {
		return rejected(task, BlockedError{ID: id, PrerequisiteTitle: dep.PrerequisiteTitle})
	}
	updated := task.Clone()
	edit(&updated)
	return s.UpdateTask(ctx, updated)
}

// MoveTask changes the status of a task
func (s *Session) MoveTask(ctx context.Context, id string, status models.Status) UpdateResult {
	return s.EditTask(ctx, id, func(t *models.Task) { t.Status = status })
}

// AddComment appends a comment by user
func (s *Session) AddComment(ctx context.Context, id string, user models.Assignee, text string) UpdateResult {
	text = strings.TrimSpace(text)
	if text == "" {
		task, _ := s.State().FindTask(id)
		return rejected(task, ValidationError{Field: "text", Reason: "is required"})
	}
	return s.EditTask(ctx, id, func(t *models.Task) {
		t.Comments = append(t.Comments, models.Comment{
			ID:        s.newID(),
			User:      user,
			Text:      text,
			CreatedAt: s.now(),
		})
	})
}

// ToggleSubtask flips the completion of one subtask. It is allowed on blocked
// tasks, matching the checklist on the card.
func (s *Session) ToggleSubtask(ctx context.Context, taskID, subtaskID string) UpdateResult {
	task, ok := s.State().FindTask(taskID)
	if !ok {
		return rejected(models.Task{ID: taskID}, TaskNotFoundError{ID: taskID})
	}
	updated := task.Clone()
	i := slices.IndexFunc(updated.Subtasks, func(st models.Subtask) bool { return st.ID == subtaskID })
	if i < 0 {
		return rejected(task, SubtaskNotFoundError{TaskID: taskID, SubtaskID: subtaskID})
	}
	updated.Subtasks[i].Completed = !updated.Subtasks[i].Completed
	return s.UpdateTask(ctx, updated)
}

// Suggestion is what the assistant proposes for a task
type Suggestion struct {
	TaskID   string   `json:"task_id"`
	Title    string   `json:"title,omitempty"`
	Subtasks []string `json:"subtasks"`
}

// Suggest asks the assistant for subtasks and, when the task has a
// description, an alternative title
func (s *Session) Suggest(ctx context.Context, id string) (Suggestion, error) {
	if s.suggester == nil {
		return Suggestion{}, ErrAssistantDisabled
	}
	task, ok := s.State().FindTask(id)
	if !ok {
		return Suggestion{}, TaskNotFoundError{ID: id}
	}

	subtasks, err := s.suggester.GenerateSubtasks(ctx, task.Title, task.Description)
	if err != nil {
		return Suggestion{}, err
	}
	suggestion := Suggestion{TaskID: id, Subtasks: subtasks}
	if strings.TrimSpace(task.Description) != "" {
		title, err := s.suggester.GenerateTitle(ctx, task.Description)
		if err != nil {
			return Suggestion{}, err
		}
		suggestion.Title = title
	}
	return suggestion, nil
}

// ApplySuggestion sets the suggested title when non-empty and appends the
// suggested subtasks that are not already on the task
func (s *Session) ApplySuggestion(ctx context.Context, sg Suggestion) UpdateResult {
	task, ok := s.State().FindTask(sg.TaskID)
	if !ok {
		return rejected(models.Task{ID: sg.TaskID}, TaskNotFoundError{ID: sg.TaskID})
	}
	updated := task.Clone()
	if title := strings.TrimSpace(sg.Title); title != "" {
		updated.Title = title
	}
	updated.Subtasks = board.MergeSubtasks(updated.Subtasks, sg.Subtasks, s.newID)
	return s.UpdateTask(ctx, updated)
}

// Search runs a natural-language search over every task. An empty query
// clears the results without calling the assistant.
func (s *Session) Search(ctx context.Context, query string) State {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Dispatch(SearchCleared{})
	}
	if s.searcher == nil {
		s.Dispatch(SearchStarted{Query: query})
		return s.Dispatch(SearchFailed{Query: query, Message: s.UserMessage(ErrAssistantDisabled)})
	}

	current := s.Dispatch(SearchStarted{Query: query})
	ids, err := s.searcher.FindTasks(ctx, query, board.Redact(current.Snapshot.Tasks), s.today())
	if err != nil {
		return s.Dispatch(SearchFailed{Query: query, Message: s.UserMessage(err)})
	}
	return s.Dispatch(SearchCompleted{Query: query, IDs: ids})
}

// FormatSQL pretty-prints a query through the assistant
func (s *Session) FormatSQL(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ValidationError{Field: "sql", Reason: "is required"}
	}
	if s.formatter == nil {
		return "", ErrAssistantDisabled
	}
	return s.formatter.FormatSQL(ctx, query)
}

// SetLongPendingDays stores the long pending threshold and applies it
func (s *Session) SetLongPendingDays(ctx context.Context, days int) error {
	if days < 0 {
		return ValidationError{Field: "long_pending_days", Reason: "must not be negative"}
	}
	profile, err := s.store.SetLongPendingDays(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.Dispatch(LongPendingDaysChanged{Days: profile.LongPendingDays})
	return nil
}

// UserMessage returns the text to show for err. Errors raised by the session
// itself are shown as they are.
func (s *Session) UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var validation ValidationError
	var notFound TaskNotFoundError
	if errors.Is(err, ErrAssistantDisabled) || errors.As(err, &validation) || errors.As(err, &notFound) {
		return err.Error()
	}
	return s.userMessage(err)
}

// IsBlocked reports whether err stopped an edit because of an open prerequisite
func IsBlocked(err error) bool {
	var blocked BlockedError
	return errors.As(err, &blocked)
}
