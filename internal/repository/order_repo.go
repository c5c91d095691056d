package repository

import (
	"context"

	"inventra/internal/dto"
	"inventra/internal/model"

	"gorm.io/gorm"
)

const orderRefsSelect = "orders.*, suppliers.name AS supplier_name, users.full_name AS user_name"

// OrderRepository defines the data access contract for purchase orders.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	ListAll(ctx context.Context) ([]dto.OrderWithRefs, error)
	FindByID(ctx context.Context, id uint) (*dto.OrderWithRefs, error)
	ByStatus(ctx context.Context, status string) ([]dto.OrderWithRefs, error)
	// LastOrderNumber returns "" without error when no order exists yet.
	LastOrderNumber(ctx context.Context) (string, error)
	Stats(ctx context.Context) (*dto.OrderStats, error)
	Update(ctx context.Context, id uint, o *model.Order) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Select(orderRefsSelect).
		Joins("LEFT JOIN suppliers ON orders.supplier_id = suppliers.id").
		Joins("LEFT JOIN users ON orders.user_id = users.id")
}

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) ListAll(ctx context.Context) ([]dto.OrderWithRefs, error) {
	rows := make([]dto.OrderWithRefs, 0)
	err := r.withRefs(ctx).Order("orders.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) FindByID(ctx context.Context, id uint) (*dto.OrderWithRefs, error) {
	var row dto.OrderWithRefs
	err := r.withRefs(ctx).Where("orders.id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *orderRepo) ByStatus(ctx context.Context, status string) ([]dto.OrderWithRefs, error) {
	rows := make([]dto.OrderWithRefs, 0)
	err := r.withRefs(ctx).
		Where("orders.status = ?", status).
		Order("orders.order_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) LastOrderNumber(ctx context.Context) (string, error) {
	var number string
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("order_number").
		Order("id DESC").
		Limit(1).
		Scan(&number).Error
	return number, err
}

func (r *orderRepo) Stats(ctx context.Context) (*dto.OrderStats, error) {
	var stats dto.OrderStats
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total_amount) FILTER (WHERE status = 'received'), 0) AS total_value").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *orderRepo) Update(ctx context.Context, id uint, o *model.Order) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Select("supplier_id", "order_date", "expected_delivery_date", "status", "total_amount").
		Updates(o).Error
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Order{}, id).Error
}
