package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	StoreID     string     `gorm:"size:36;not null;index" json:"storeId"`
	Store       Store      `gorm:"foreignKey:StoreID" json:"-"`
	BillboardID string     `gorm:"size:36;not null;index" json:"billboardId"`
	Billboard   *Billboard `gorm:"foreignKey:BillboardID;constraint:OnDelete:RESTRICT" json:"billboard,omitempty"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
