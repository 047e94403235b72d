package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/mariam168/smart-shop-sub001/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches.
var ErrNotFound = gorm.ErrRecordNotFound

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order with its items in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Find looks an order up by numeric id or by order_ref.
func (r *OrderRepository) Find(ctx context.Context, key string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("CAST(id AS TEXT) = ? OR order_ref = ?", key, key).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	return r.updateColumn(ctx, id, "status", status)
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) error {
	return r.updateColumn(ctx, id, "payment_status", status)
}

func (r *OrderRepository) updateColumn(ctx context.Context, id uint, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// OrderStats summarizes orders for the dashboard. Cancelled orders do not
// count toward revenue.
type OrderStats struct {
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
	Pending int64   `json:"pending"`
}

func (r *OrderRepository) Stats(ctx context.Context) (OrderStats, error) {
	var s OrderStats
	db := r.db.WithContext(ctx).Model(&models.Order{})
	if err := db.Count(&s.Count).Error; err != nil {
		return s, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&s.Pending).Error; err != nil {
		return s, err
	}
	var revenue struct{ Total float64 }
	if err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status <> ?", models.OrderStatusCancelled).
		Scan(&revenue).Error; err != nil {
		return s, err
	}
	s.Revenue = revenue.Total
	return s, nil
}

// IsNotFound reports whether err means no row matched.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
