package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID         string      `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	StoreID    string      `gorm:"size:36;not null;index" json:"storeId"`
	Store      Store       `gorm:"foreignKey:StoreID" json:"-"`
	IsPaid     bool        `gorm:"not null;default:false" json:"isPaid"`
	Phone      string      `gorm:"size:20;not null;default:''" json:"phone"`
	Address    string      `gorm:"type:text" json:"address"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
