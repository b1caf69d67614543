package models

import (
	"time"
)

// Task represents a unit of client work on the board
type Task struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title          string         `gorm:"not null" json:"title"`
	Description    string         `json:"description"`
	Priority       Priority       `gorm:"type:text" json:"priority"`
	Status         Status         `gorm:"type:text;index" json:"status"`
	StartDate      Date           `json:"start_date"`
	DueDate        Date           `json:"due_date"`
	ClientID       string         `gorm:"type:text;index" json:"client_id"`
	ProjectID      string         `gorm:"type:text;index" json:"project_id"`
	EngagementType EngagementType `gorm:"type:text" json:"engagement_type"`
	DependsOn      string         `gorm:"type:text" json:"depends_on,omitempty"` // id of a task in the same project

	// Nested records are stored as JSON columns
	Assignee    Assignee     `gorm:"serializer:json" json:"assignee"`
	Subtasks    []Subtask    `gorm:"serializer:json" json:"subtasks"`
	Comments    []Comment    `gorm:"serializer:json" json:"comments"`
	Attachments []Attachment `gorm:"serializer:json" json:"attachments"`
	Financials  *Financials  `gorm:"serializer:json" json:"financials,omitempty"`
}

// Subtask is a checklist item inside a task
type Subtask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Comment is a note left on a task
type Comment struct {
	ID        string    `json:"id"`
	User      Assignee  `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Attachment references a file stored outside the board
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Size string `json:"size"`
	Type string `json:"type"`
}

// Financials tracks the fee agreed for a task and what has been collected
type Financials struct {
	TotalFee            float64 `json:"total_fee"`
	AmountReceived      float64 `json:"amount_received,omitempty"`
	ReceivedBy          string  `json:"received_by,omitempty"`
	ReceivedDate        Date    `json:"received_date"`
	BalanceReceivedDate Date    `json:"balance_received_date"`
	BalanceReceivedBy   string  `json:"balance_received_by,omitempty"`
}

// BalanceDue is the part of the fee not yet received
func (f *Financials) BalanceDue() float64 {
	if f == nil {
		return 0
	}
	return f.TotalFee - f.AmountReceived
}

// SubtaskProgress returns completed and total subtask counts
func (t Task) SubtaskProgress() (done, total int) {
	for _, s := range t.Subtasks {
		if s.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// Clone returns a copy of the task that shares no slices with t
func (t Task) Clone() Task {
	c := t
	c.Subtasks = append([]Subtask(nil), t.Subtasks...)
	c.Comments = append([]Comment(nil), t.Comments...)
	c.Attachments = append([]Attachment(nil), t.Attachments...)
	if t.Financials != nil {
		f := *t.Financials
		c.Financials = &f
	}
	return c
}
