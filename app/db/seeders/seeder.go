package seeders

import (
	"log"

	"github.com/google/uuid"
	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DBSeed populates a fresh database with one demo merchant and a
// small catalog. Running it against a non-empty database duplicates
// everything except the user, so only run it once.
func DBSeed(db *gorm.DB) error {
	user := models.User{
		ID:        uuid.New().String(),
		FirstName: "Demo",
		LastName:  "Merchant",
		Email:     "demo@example.com",
		Password:  helpers.HashPassword("password123"),
	}
	if err := db.Where(models.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
		return err
	}

	store := models.Store{Name: "Demo Store", UserID: user.ID}
	if err := db.Create(&store).Error; err != nil {
		return err
	}

	billboard := models.Billboard{
		StoreID:  store.ID,
		Label:    "Summer Collection",
		ImageURL: "https://placehold.co/1200x400",
	}
	if err := db.Create(&billboard).Error; err != nil {
		return err
	}

	category := models.Category{
		StoreID:     store.ID,
		BillboardID: billboard.ID,
		Name:        "T-Shirts",
	}
	if err := db.Create(&category).Error; err != nil {
		return err
	}

	sizes := []models.Size{
		{StoreID: store.ID, Name: "Small", Value: "S"},
		{StoreID: store.ID, Name: "Medium", Value: "M"},
		{StoreID: store.ID, Name: "Large", Value: "L"},
	}
	if err := db.Create(&sizes).Error; err != nil {
		return err
	}

	colors := []models.Color{
		{StoreID: store.ID, Name: "Black", Value: "#000000"},
		{StoreID: store.ID, Name: "White", Value: "#FFFFFF"},
	}
	if err := db.Create(&colors).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			StoreID:    store.ID,
			CategoryID: category.ID,
			SizeID:     sizes[1].ID,
			ColorID:    colors[0].ID,
			Name:       "Classic Tee",
			Price:      decimal.NewFromFloat(19.99),
			IsFeatured: true,
			Images: []models.ProductImage{
				{URL: "https://placehold.co/600x600?text=classic-tee"},
			},
		},
		{
			StoreID:    store.ID,
			CategoryID: category.ID,
			SizeID:     sizes[2].ID,
			ColorID:    colors[1].ID,
			Name:       "Oversized Tee",
			Price:      decimal.NewFromFloat(24.50),
			Images: []models.ProductImage{
				{URL: "https://placehold.co/600x600?text=oversized-front"},
				{URL: "https://placehold.co/600x600?text=oversized-back"},
			},
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded store %s with %d products (login: %s / password123)", store.ID, len(products), user.Email)
	return nil
}
