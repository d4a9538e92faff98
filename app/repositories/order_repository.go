package repositories

import (
	"context"

	"github.com/gostore/admin/app/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByStore(ctx context.Context, storeID string) ([]models.Order, error)
	GetPaidByStore(ctx context.Context, storeID string) ([]models.Order, error)
	MarkPaid(ctx context.Context, id string) error
	CountByStore(ctx context.Context, storeID string) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	// Order items are created together with the order row in one
	// transaction (GORM persists the association inside Create).
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		First(&order, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByStore(ctx context.Context, storeID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetPaidByStore(ctx context.Context, storeID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("store_id = ? AND is_paid = ?", storeID, true).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("is_paid", true).Error
}

func (r *orderRepository) CountByStore(ctx context.Context, storeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}
