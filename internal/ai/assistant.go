package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// Error is a failed assistant call. Message is safe to show to the user.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns the message to show for an assistant failure
func UserMessage(err error) string {
	var aiErr *Error
	if errors.As(err, &aiErr) {
		return aiErr.Message
	}
	if err == nil {
		return ""
	}
	return "The AI assistant is unavailable right now. Please try again."
}

func wrap(op, message string, err error) error {
	if errors.Is(err, ErrMissingAPIKey) {
		message = "The AI assistant is not configured. Set GEMINI_API_KEY or ai.api_key."
	}
	return &Error{Op: op, Message: message, Err: err}
}

// GenerateSubtasks asks for 3 to 7 actionable subtasks for a task
func (c *Client) GenerateSubtasks(ctx context.Context, title, description string) ([]string, error) {
	prompt := fmt.Sprintf(`You assist staff at an accounting firm. Break the task below into 3 to 7 short, actionable subtasks.

Task title: %s
Task description: %s

Reply with JSON of the form {"subtasks": ["..."]}.`, title, description)

	var out struct {
		Subtasks []string `json:"subtasks"`
	}
	responseSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"subtasks": {Type: "ARRAY", Items: &schema{Type: "STRING"}},
		},
		Required: []string{"subtasks"},
	}
	if err := c.generateJSON(ctx, prompt, responseSchema, &out); err != nil {
		return nil, wrap("generate subtasks", "Could not generate subtasks. Check the API key and network connection.", err)
	}

	subtasks := make([]string, 0, len(out.Subtasks))
	for _, s := range out.Subtasks {
		if s = strings.TrimSpace(s); s != "" {
			subtasks = append(subtasks, s)
		}
	}
	return subtasks, nil
}

// GenerateTitle asks for a concise title that fits the description
func (c *Client) GenerateTitle(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(`Write a concise, professional task title (at most 10 words) for this accounting task description:

%s

Reply with JSON of the form {"title": "..."}.`, description)

	var out struct {
		Title string `json:"title"`
	}
	responseSchema := &schema{
		Type:       "OBJECT",
		Properties: map[string]*schema{"title": {Type: "STRING"}},
		Required:   []string{"title"},
	}
	if err := c.generateJSON(ctx, prompt, responseSchema, &out); err != nil {
		return "", wrap("generate title", "Could not generate a title. Check the API key and network connection.", err)
	}
	return strings.Trim(strings.TrimSpace(out.Title), `"'`), nil
}

// FindTasks asks the model which of the given tasks match a free-text query
func (c *Client) FindTasks(ctx context.Context, query string, tasks []board.SearchRecord, today models.Date) ([]string, error) {
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, wrap("search tasks", "Could not perform AI search.", fmt.Errorf("failed to encode tasks: %w", err))
	}

	prompt := fmt.Sprintf(`You search the task list of an accounting firm. Today's date is %s.
Interpret relative dates such as "overdue", "this week" or "next month" against today's date.

Query: %s

Tasks (JSON):
%s

Reply with JSON of the form {"taskIds": ["..."]} listing the ids of every matching task. Return an empty list when nothing matches.`,
		today, query, data)

	var out struct {
		TaskIDs []string `json:"taskIds"`
	}
	responseSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"taskIds": {Type: "ARRAY", Items: &schema{Type: "STRING"}},
		},
		Required: []string{"taskIds"},
	}
	if err := c.generateJSON(ctx, prompt, responseSchema, &out); err != nil {
		return nil, wrap("search tasks", "Could not perform AI search. Check the API key and network connection.", err)
	}
	return out.TaskIDs, nil
}

// FormatSQL asks the model to pretty-print a SQL query
func (c *Client) FormatSQL(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(`Format the following SQL query for readability: uppercase keywords, one clause per line, consistent indentation. Do not change its meaning. Reply with the SQL only.

%s`, query)

	text, err := c.generate(ctx, prompt, nil)
	if err != nil {
		return "", wrap("format sql", "Could not format the SQL query. Check the API key and network connection.", err)
	}
	return stripFences(text), nil
}
