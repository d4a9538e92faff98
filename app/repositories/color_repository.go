package repositories

import (
	"context"

	"github.com/gostore/admin/app/models"
	"gorm.io/gorm"
)

type ColorRepositoryImpl interface {
	Create(ctx context.Context, color *models.Color) error
	GetByID(ctx context.Context, id string) (*models.Color, error)
	GetByStore(ctx context.Context, storeID string) ([]models.Color, error)
	Update(ctx context.Context, color *models.Color) error
	Delete(ctx context.Context, id string) error
}

type colorRepository struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) ColorRepositoryImpl {
	return &colorRepository{db: db}
}

func (r *colorRepository) Create(ctx context.Context, color *models.Color) error {
	return r.db.WithContext(ctx).Create(color).Error
}

func (r *colorRepository) GetByID(ctx context.Context, id string) (*models.Color, error) {
	var color models.Color
	err := r.db.WithContext(ctx).First(&color, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) GetByStore(ctx context.Context, storeID string) ([]models.Color, error) {
	var colors []models.Color
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&colors).Error
	if err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *colorRepository) Update(ctx context.Context, color *models.Color) error {
	return r.db.WithContext(ctx).Save(color).Error
}

func (r *colorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Color{}, "id = ?", id).Error
}
