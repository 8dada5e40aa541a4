// Package model contains the GORM persistence models. PostgreSQL generates
// UUID primary keys via uuid_generate_v7().
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Preferences are stored as a jsonb
// document and mapped to the entity's map in the repository layer.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Preferences  []byte    `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
