package repository

import (
	"context"

	"inventra/internal/dto"
	"inventra/internal/model"

	"gorm.io/gorm"
)

// refsSelect resolves category and supplier names in the same statement the
// listings use; either name scans as NULL when the reference is absent.
const productRefsSelect = "products.*, categories.name AS category_name, suppliers.name AS supplier_name"

// ProductRepository defines the data access contract for products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	// FindByID reads the bare row without joined names; it returns
	// gorm.ErrRecordNotFound when the id matches nothing.
	FindByID(ctx context.Context, id uint) (*dto.ProductRow, error)
	ListAll(ctx context.Context) ([]dto.ProductWithRefs, error)
	Search(ctx context.Context, keyword string) ([]dto.ProductWithRefs, error)
	LowStock(ctx context.Context) ([]dto.ProductWithRefs, error)
	ByCategory(ctx context.Context, categoryID uint) ([]dto.ProductWithRefs, error)
	BySupplier(ctx context.Context, supplierID uint) ([]dto.ProductWithRefs, error)
	Stats(ctx context.Context) (*dto.ProductStats, error)
	// Update overwrites every listed column unconditionally and reports no
	// error when the id matches nothing.
	Update(ctx context.Context, id uint, p *model.Product) error
	Delete(ctx context.Context, id uint) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Select(productRefsSelect).
		Joins("LEFT JOIN categories ON products.category_id = categories.id").
		Joins("LEFT JOIN suppliers ON products.supplier_id = suppliers.id")
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*dto.ProductRow, error) {
	var row dto.ProductRow
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("products.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *productRepo) ListAll(ctx context.Context) ([]dto.ProductWithRefs, error) {
	rows := make([]dto.ProductWithRefs, 0)
	err := r.withRefs(ctx).Order("products.id DESC").Scan(&rows).Error
	return rows, err
}

func (r *productRepo) Search(ctx context.Context, keyword string) ([]dto.ProductWithRefs, error) {
	rows := make([]dto.ProductWithRefs, 0)
	pattern := "%" + keyword + "%"
	err := r.withRefs(ctx).
		Where("products.name LIKE ? OR products.sku LIKE ?", pattern, pattern).
		Scan(&rows).Error
	return rows, err
}

func (r *productRepo) LowStock(ctx context.Context) ([]dto.ProductWithRefs, error) {
	rows := make([]dto.ProductWithRefs, 0)
	err := r.withRefs(ctx).
		Where("products.quantity_in_stock <= products.reorder_level").
		Order("products.quantity_in_stock ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *productRepo) ByCategory(ctx context.Context, categoryID uint) ([]dto.ProductWithRefs, error) {
	rows := make([]dto.ProductWithRefs, 0)
	err := r.withRefs(ctx).
		Where("products.category_id = ?", categoryID).
		Order("products.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *productRepo) BySupplier(ctx context.Context, supplierID uint) ([]dto.ProductWithRefs, error) {
	rows := make([]dto.ProductWithRefs, 0)
	err := r.withRefs(ctx).
		Where("products.supplier_id = ?", supplierID).
		Order("products.name ASC").
		Scan(&rows).Error
	return rows, err
}

// Stats runs a single aggregate statement so the count and the total come
// from one consistent snapshot.
func (r *productRepo) Stats(ctx context.Context) (*dto.ProductStats, error) {
	var stats dto.ProductStats
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("COUNT(*) AS total_products, COALESCE(SUM(unit_price * quantity_in_stock), 0) AS total_value").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *productRepo) Update(ctx context.Context, id uint, p *model.Product) error {
	// Select forces zero-value columns (empty description, zero stock) to be
	// written too: this is a full overwrite, not a patch.
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Select("name", "sku", "category_id", "supplier_id", "description",
			"unit_price", "quantity_in_stock", "reorder_level", "image_url").
		Updates(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}
