package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string        `json:"name" gorm:"not null"`
	Email        string        `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string        `json:"-" gorm:"not null"`
	SavedResults []SavedResult `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
