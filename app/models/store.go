package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the tenant boundary. Every other resource is scoped to
// exactly one store, and mutations require the acting user to own it.
type Store struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UserID    string    `gorm:"size:36;not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
