package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SavedResult is an immutable snapshot of a recommendation a user chose to
// keep. Results is stored as-is in a json column.
type SavedResult struct {
	ID      string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID  string         `json:"user_id" gorm:"type:varchar(36);not null;index"`
	User    User           `json:"user" gorm:"foreignKey:UserID"`
	Results datatypes.JSON `json:"results" gorm:"type:json;not null"`
	SavedAt time.Time      `json:"saved_at" gorm:"not null;index"`
}

func (r *SavedResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
