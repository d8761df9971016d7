package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// The primary key is the principal identifier issued by the identity provider.
type ProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Role         string    `gorm:"type:varchar(16);not null;default:'buyer'"`
	Verification string    `gorm:"type:varchar(16);not null;default:'none'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
