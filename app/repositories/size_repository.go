package repositories

import (
	"context"

	"github.com/gostore/admin/app/models"
	"gorm.io/gorm"
)

type SizeRepositoryImpl interface {
	Create(ctx context.Context, size *models.Size) error
	GetByID(ctx context.Context, id string) (*models.Size, error)
	GetByStore(ctx context.Context, storeID string) ([]models.Size, error)
	Update(ctx context.Context, size *models.Size) error
	Delete(ctx context.Context, id string) error
}

type sizeRepository struct {
	db *gorm.DB
}

func NewSizeRepository(db *gorm.DB) SizeRepositoryImpl {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) Create(ctx context.Context, size *models.Size) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *sizeRepository) GetByID(ctx context.Context, id string) (*models.Size, error) {
	var size models.Size
	err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) GetByStore(ctx context.Context, storeID string) ([]models.Size, error) {
	var sizes []models.Size
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&sizes).Error
	if err != nil {
		return nil, err
	}
	return sizes, nil
}

func (r *sizeRepository) Update(ctx context.Context, size *models.Size) error {
	return r.db.WithContext(ctx).Save(size).Error
}

func (r *sizeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Size{}, "id = ?", id).Error
}
