package model

import (
	"time"

	"gorm.io/gorm"
)

// TaskTemplate is a per-service blueprint of tasks. It is never executed
// directly; pages instantiate tasks from its items.
type TaskTemplate struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ServiceName string         `json:"service_name" gorm:"type:varchar(255);not null;index"`
	AutoAssign  bool           `json:"auto_assign" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Items []TaskTemplateItem `json:"items,omitempty" gorm:"foreignKey:TemplateID"`
}

// TaskTemplateItem is one ordered step of a task template
type TaskTemplateItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TemplateID   uint      `json:"template_id" gorm:"index;not null"`
	Position     int       `json:"position" gorm:"not null;default:0"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Description  string    `json:"description" gorm:"type:text"`
	DurationDays int       `json:"duration_days" gorm:"default:0"`
	Role         string    `json:"role" gorm:"type:varchar(100)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
