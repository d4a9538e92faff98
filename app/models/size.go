package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Size struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	StoreID   string    `gorm:"size:36;not null;index" json:"storeId"`
	Store     Store     `gorm:"foreignKey:StoreID" json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Value     string    `gorm:"size:100;not null" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Size) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
