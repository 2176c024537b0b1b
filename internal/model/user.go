package model

import (
	"time"

	"gorm.io/gorm"
)

// User mirrors the identity the authentication provider supplies. Credentials
// live with that provider, not here; this table exists for assignee and
// responsible lookups.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(255);not null;index"`
	Email     string         `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Role      string         `json:"role" gorm:"type:varchar(100)"`
	Active    bool           `json:"active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
