package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	StoreID    string          `gorm:"size:36;not null;index" json:"storeId"`
	Store      Store           `gorm:"foreignKey:StoreID" json:"-"`
	CategoryID string          `gorm:"size:36;not null;index" json:"categoryId"`
	Category   *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
	SizeID     string          `gorm:"size:36;not null;index" json:"sizeId"`
	Size       *Size           `gorm:"foreignKey:SizeID;constraint:OnDelete:RESTRICT" json:"size,omitempty"`
	ColorID    string          `gorm:"size:36;not null;index" json:"colorId"`
	Color      *Color          `gorm:"foreignKey:ColorID;constraint:OnDelete:RESTRICT" json:"color,omitempty"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	IsFeatured bool            `gorm:"not null;default:false" json:"isFeatured"`
	IsArchived bool            `gorm:"not null;default:false" json:"isArchived"`

	// Images is fully owned by the product: updates replace the whole
	// collection, never merge into it.
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

type ProductImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;not null;index" json:"productId"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}
