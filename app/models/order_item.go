package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem snapshots the product name and price at order time so
// later catalog edits do not rewrite order history.
type OrderItem struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID     string          `gorm:"size:36;not null;index" json:"orderId"`
	ProductID   string          `gorm:"size:36;not null;index" json:"productId"`
	Product     *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"product,omitempty"`
	ProductName string          `gorm:"size:255;not null" json:"productName"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
