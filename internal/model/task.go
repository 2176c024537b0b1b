package model

import (
	"time"

	"gorm.io/gorm"
)

// Task status values.
const (
	TaskStatusPending    = "Pendiente"
	TaskStatusInProgress = "En Progreso"
	TaskStatusCompleted  = "Completada"
	TaskStatusPaused     = "Pausada"
)

// Task priority values.
const (
	TaskPriorityHigh   = "Alta"
	TaskPriorityMedium = "Media"
	TaskPriorityLow    = "Baja"
)

// Task represents a unit of work, optionally attached to a project and/or
// client and optionally assigned to a user
type Task struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	Title               string         `json:"title" gorm:"type:varchar(255);not null"`
	Description         string         `json:"description" gorm:"type:text"`
	ProjectID           *uint          `json:"project_id,omitempty" gorm:"index"`
	ClientID            *uint          `json:"client_id,omitempty" gorm:"index"`
	AssigneeID          *uint          `json:"assignee_id,omitempty" gorm:"index"`
	DueDate             *time.Time     `json:"due_date"`
	Status              string         `json:"status" gorm:"type:varchar(20);not null;default:'Pendiente';index"`
	Priority            string         `json:"priority" gorm:"type:varchar(10);not null;default:'Media'"`
	ManuallyPrioritized bool           `json:"manually_prioritized" gorm:"default:false"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Comments    []TaskComment `json:"comments,omitempty" gorm:"foreignKey:TaskID"`
	TimeEntries []TimeEntry   `json:"time_entries,omitempty" gorm:"foreignKey:TaskID"`
}

// TaskComment is a comment left on a task
type TaskComment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TaskID    uint      `json:"task_id" gorm:"index;not null"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeEntry records time spent on a task by a user
type TimeEntry struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	TaskID    uint       `json:"task_id" gorm:"index;not null"`
	UserID    uint       `json:"user_id" gorm:"index"`
	Minutes   int        `json:"minutes" gorm:"not null"`
	Date      *time.Time `json:"date"`
	Note      string     `json:"note" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
