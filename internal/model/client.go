package model

import (
	"time"

	"gorm.io/gorm"
)

// Client status values. Disabling a client is a status flip, never a row
// deletion, and never touches its services.
const (
	ClientStatusActive   = "Activo"
	ClientStatusInactive = "Inactivo"
)

// Payment schemes for a client service.
const (
	PaymentSchemeFull    = "Completo"
	PaymentSchemePartial = "Parcial"
)

// Partial payment status values.
const (
	PaymentStatusPending = "Pendiente"
	PaymentStatusPaid    = "Pagado"
)

// Client represents an agency client stored in the database
type Client struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"type:varchar(255);not null"`
	Company      string         `json:"company" gorm:"type:varchar(255)"`
	Email        string         `json:"email" gorm:"type:varchar(100);index"`
	Phone        string         `json:"phone" gorm:"type:varchar(50)"`
	Notes        string         `json:"notes" gorm:"type:text"`
	Status       string         `json:"status" gorm:"type:varchar(20);not null;default:'Activo';index"`
	RenewalDate  *time.Time     `json:"renewal_date"`
	BillingCycle string         `json:"billing_cycle" gorm:"type:varchar(50)"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Services []ClientService `json:"services,omitempty" gorm:"foreignKey:ClientID"`
}

// ClientService represents a contracted service owned by a client
type ClientService struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ClientID      uint      `json:"client_id" gorm:"index;not null"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	Price         float64   `json:"price" gorm:"not null"`
	PaymentScheme string    `json:"payment_scheme" gorm:"type:varchar(20);not null;default:'Completo'"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Collaborators   []ServiceCollaborator `json:"collaborators,omitempty" gorm:"foreignKey:ServiceID"`
	PartialPayments []PartialPayment      `json:"partial_payments,omitempty" gorm:"foreignKey:ServiceID"`
}

// ServiceCollaborator associates a user with a client service under a role
type ServiceCollaborator struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ServiceID uint      `json:"service_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Role      string    `json:"role" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartialPayment is a scheduled installment for a service billed under the
// partial scheme
type PartialPayment struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	ServiceID  uint       `json:"service_id" gorm:"index;not null"`
	Percentage float64    `json:"percentage"`
	Amount     float64    `json:"amount" gorm:"not null"`
	DueDate    *time.Time `json:"due_date"`
	Status     string     `json:"status" gorm:"type:varchar(20);not null;default:'Pendiente'"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
