package migrations

import (
	"github.com/gostore/admin/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Billboard{},
		&models.Category{},
		&models.Size{},
		&models.Color{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
	)
}
