package repositories

import (
	"context"

	"github.com/gostore/admin/app/models"
	"gorm.io/gorm"
)

type BillboardRepositoryImpl interface {
	Create(ctx context.Context, billboard *models.Billboard) error
	GetByID(ctx context.Context, id string) (*models.Billboard, error)
	GetByStore(ctx context.Context, storeID string) ([]models.Billboard, error)
	Update(ctx context.Context, billboard *models.Billboard) error
	Delete(ctx context.Context, id string) error
	CountByStore(ctx context.Context, storeID string) (int64, error)
}

type billboardRepository struct {
	db *gorm.DB
}

func NewBillboardRepository(db *gorm.DB) BillboardRepositoryImpl {
	return &billboardRepository{db: db}
}

func (r *billboardRepository) Create(ctx context.Context, billboard *models.Billboard) error {
	return r.db.WithContext(ctx).Create(billboard).Error
}

func (r *billboardRepository) GetByID(ctx context.Context, id string) (*models.Billboard, error) {
	var billboard models.Billboard
	err := r.db.WithContext(ctx).First(&billboard, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &billboard, nil
}

func (r *billboardRepository) GetByStore(ctx context.Context, storeID string) ([]models.Billboard, error) {
	var billboards []models.Billboard
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&billboards).Error
	if err != nil {
		return nil, err
	}
	return billboards, nil
}

func (r *billboardRepository) Update(ctx context.Context, billboard *models.Billboard) error {
	return r.db.WithContext(ctx).Save(billboard).Error
}

func (r *billboardRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Billboard{}, "id = ?", id).Error
}

func (r *billboardRepository) CountByStore(ctx context.Context, storeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Billboard{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}
