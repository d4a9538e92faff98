package repositories

import (
	"context"

	"github.com/gostore/admin/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter carries the optional query filters for a store's
// product listing. IsFeatured is the raw query value: any non-empty
// string restricts the listing to featured products.
type ProductFilter struct {
	CategoryID string `schema:"categoryId"`
	ColorID    string `schema:"colorId"`
	SizeID     string `schema:"sizeId"`
	IsFeatured string `schema:"isFeatured"`
}

func (f ProductFilter) IsZero() bool {
	return f.CategoryID == "" && f.ColorID == "" && f.SizeID == "" && f.IsFeatured == ""
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDs(ctx context.Context, storeID string, ids []string) ([]models.Product, error)
	GetByStore(ctx context.Context, storeID string, filter ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product, images []models.ProductImage) error
	Delete(ctx context.Context, id string) error
	CountByStore(ctx context.Context, storeID string) (int64, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	CountBySize(ctx context.Context, sizeID string) (int64, error)
	CountByColor(ctx context.Context, colorID string) (int64, error)
	CountByOrderItems(ctx context.Context, productID string) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Size").
		Preload("Color").
		Preload("Images").
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByIDs(ctx context.Context, storeID string, ids []string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("store_id = ? AND id IN ? AND is_archived = ?", storeID, ids, false).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetByStore(ctx context.Context, storeID string, filter ProductFilter) ([]models.Product, error) {
	var products []models.Product

	query := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Size").
		Preload("Color").
		Preload("Images").
		Where("store_id = ? AND is_archived = ?", storeID, false)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.ColorID != "" {
		query = query.Where("color_id = ?", filter.ColorID)
	}
	if filter.SizeID != "" {
		query = query.Where("size_id = ?", filter.SizeID)
	}
	if filter.IsFeatured != "" {
		query = query.Where("is_featured = ?", true)
	}

	err := query.Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Update rewrites the product's scalar columns and replaces the whole
// image collection. Both steps run in one transaction so a failure
// mid-way cannot leave the product without images.
func (p *productRepository) Update(ctx context.Context, product *models.Product, images []models.ProductImage) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(product).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}

		for i := range images {
			images[i].ProductID = product.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Select("Images").Delete(&models.Product{ID: id}).Error
}

func (p *productRepository) CountByStore(ctx context.Context, storeID string) (int64, error) {
	return p.count(ctx, "store_id = ?", storeID)
}

func (p *productRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	return p.count(ctx, "category_id = ?", categoryID)
}

func (p *productRepository) CountBySize(ctx context.Context, sizeID string) (int64, error) {
	return p.count(ctx, "size_id = ?", sizeID)
}

func (p *productRepository) CountByColor(ctx context.Context, colorID string) (int64, error) {
	return p.count(ctx, "color_id = ?", colorID)
}

func (p *productRepository) CountByOrderItems(ctx context.Context, productID string) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (p *productRepository) count(ctx context.Context, cond string, arg interface{}) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where(cond, arg).
		Count(&count).Error
	return count, err
}
