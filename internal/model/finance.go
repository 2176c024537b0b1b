package model

import (
	"time"

	"gorm.io/gorm"
)

// Account is a ledger account expenses and incomes are booked against
type Account struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(255);not null"`
	Type      string         `json:"type" gorm:"type:varchar(50)"`
	Currency  string         `json:"currency" gorm:"type:varchar(10);default:'ARS'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Expense is a ledger row booked against an account
type Expense struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	AccountID   uint       `json:"account_id" gorm:"index;not null"`
	Category    string     `json:"category" gorm:"type:varchar(100);index"`
	Description string     `json:"description" gorm:"type:text"`
	Amount      float64    `json:"amount" gorm:"not null"`
	Date        *time.Time `json:"date" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Income is a ledger row booked against an account, optionally attributed
// to a project
type Income struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	AccountID   uint       `json:"account_id" gorm:"index;not null"`
	ProjectID   *uint      `json:"project_id,omitempty" gorm:"index"`
	Category    string     `json:"category" gorm:"type:varchar(100);index"`
	Description string     `json:"description" gorm:"type:text"`
	Amount      float64    `json:"amount" gorm:"not null"`
	Date        *time.Time `json:"date" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
