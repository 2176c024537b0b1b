package model

import (
	"time"

	"gorm.io/gorm"
)

// Project status values.
const (
	ProjectStatusProposal   = "Propuesta"
	ProjectStatusInProgress = "En Progreso"
	ProjectStatusPaused     = "Pausado"
	ProjectStatusCompleted  = "Completado"
	ProjectStatusCancelled  = "Cancelado"
)

// Project represents a client project stored in the database
type Project struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ClientID      uint           `json:"client_id" gorm:"index;not null"`
	Name          string         `json:"name" gorm:"type:varchar(255);not null"`
	Service       string         `json:"service" gorm:"type:varchar(255)"`
	Status        string         `json:"status" gorm:"type:varchar(20);not null;default:'Propuesta';index"`
	Progress      int            `json:"progress" gorm:"default:0"`
	ResponsibleID *uint          `json:"responsible_id,omitempty" gorm:"index"`
	Price         float64        `json:"price"`
	Budget        float64        `json:"budget"`
	Cost          float64        `json:"cost"`
	StartDate     *time.Time     `json:"start_date"`
	EndDate       *time.Time     `json:"end_date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Collaborators []ProjectCollaborator `json:"collaborators,omitempty" gorm:"foreignKey:ProjectID"`
}

// ProjectCollaborator assigns a user to a project under a role
type ProjectCollaborator struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"project_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Role      string    `json:"role" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
