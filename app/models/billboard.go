package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Billboard struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	StoreID   string    `gorm:"size:36;not null;index" json:"storeId"`
	Store     Store     `gorm:"foreignKey:StoreID" json:"-"`
	Label     string    `gorm:"size:255;not null" json:"label"`
	ImageURL  string    `gorm:"type:text;not null" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Billboard) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
