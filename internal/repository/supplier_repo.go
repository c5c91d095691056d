package repository

import (
	"context"

	"inventra/internal/dto"
	"inventra/internal/model"

	"gorm.io/gorm"
)

// SupplierRepository defines the data access contract for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	List(ctx context.Context) ([]dto.SupplierRow, error)
	FindByID(ctx context.Context, id uint) (*dto.SupplierRow, error)
	Update(ctx context.Context, id uint, s *model.Supplier) error
	Delete(ctx context.Context, id uint) error
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) List(ctx context.Context) ([]dto.SupplierRow, error) {
	rows := make([]dto.SupplierRow, 0)
	err := r.db.WithContext(ctx).Model(&model.Supplier{}).
		Order("name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *supplierRepo) FindByID(ctx context.Context, id uint) (*dto.SupplierRow, error) {
	var row dto.SupplierRow
	err := r.db.WithContext(ctx).Model(&model.Supplier{}).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *supplierRepo) Update(ctx context.Context, id uint, s *model.Supplier) error {
	return r.db.WithContext(ctx).Model(&model.Supplier{}).
		Where("id = ?", id).
		Select("name", "contact_person", "email", "phone", "address").
		Updates(s).Error
}

func (r *supplierRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Supplier{}, id).Error
}
