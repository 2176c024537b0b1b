package model

import (
	"time"

	"gorm.io/gorm"
)

// Lead status values.
const (
	LeadStatusNew       = "Nuevo"
	LeadStatusContacted = "Contactado"
	LeadStatusQualified = "Calificado"
	LeadStatusWon       = "Ganado"
	LeadStatusLost      = "Perdido"
)

// Lead represents a prospective client
type Lead struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"type:varchar(255);not null"`
	Company        string         `json:"company" gorm:"type:varchar(255)"`
	Email          string         `json:"email" gorm:"type:varchar(100)"`
	Phone          string         `json:"phone" gorm:"type:varchar(50)"`
	Source         string         `json:"source" gorm:"type:varchar(100)"`
	Status         string         `json:"status" gorm:"type:varchar(20);not null;default:'Nuevo';index"`
	EstimatedValue float64        `json:"estimated_value"`
	Notes          string         `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}
