package models

import "time"

// Client is a customer of the firm
type Client struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"not null" json:"name"`
}

// Project groups tasks for exactly one client
type Project struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"not null" json:"name"`
	ClientID  string    `gorm:"type:text;index;not null" json:"client_id"`
}

// Assignee is a member of staff tasks can be given to
type Assignee struct {
	Name      string `gorm:"primaryKey" json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// DefaultLongPendingDays is used until a profile sets its own threshold
const DefaultLongPendingDays = 7

// Profile holds per-installation settings
type Profile struct {
	ID              uint      `gorm:"primarykey" json:"-"`
	UpdatedAt       time.Time `json:"updated_at"`
	LongPendingDays int       `json:"long_pending_days"`
}

// Snapshot is the full set of entities the board is computed from
type Snapshot struct {
	Tasks     []Task     `json:"tasks"`
	Clients   []Client   `json:"clients"`
	Projects  []Project  `json:"projects"`
	Assignees []Assignee `json:"assignees"`
}

// FindTask returns the task with the given id
func (s Snapshot) FindTask(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
