package repositories

import (
	"context"

	"github.com/gostore/admin/app/models"
	"gorm.io/gorm"
)

type StoreRepositoryImpl interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id string) (*models.Store, error)
	// GetByIDAndUser is the ownership query: it resolves only when the
	// store exists and belongs to the given user.
	GetByIDAndUser(ctx context.Context, id, userID string) (*models.Store, error)
	GetByUser(ctx context.Context, userID string) ([]models.Store, error)
	Update(ctx context.Context, store *models.Store) error
	Delete(ctx context.Context, id string) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepositoryImpl {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).First(&store, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetByUser(ctx context.Context, userID string) ([]models.Store, error) {
	var stores []models.Store
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) Update(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Store{}, "id = ?", id).Error
}
