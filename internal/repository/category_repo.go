package repository

import (
	"context"

	"inventra/internal/dto"
	"inventra/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository defines the data access contract for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	List(ctx context.Context) ([]dto.CategoryRow, error)
	FindByID(ctx context.Context, id uint) (*dto.CategoryRow, error)
	FindByName(ctx context.Context, name string) (*dto.CategoryRow, error)
	Update(ctx context.Context, id uint, c *model.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) List(ctx context.Context) ([]dto.CategoryRow, error) {
	rows := make([]dto.CategoryRow, 0)
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Order("name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint) (*dto.CategoryRow, error) {
	var row dto.CategoryRow
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *categoryRepo) FindByName(ctx context.Context, name string) (*dto.CategoryRow, error) {
	var row dto.CategoryRow
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("name = ?", name).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *categoryRepo) Update(ctx context.Context, id uint, c *model.Category) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", id).
		Select("name", "description").
		Updates(c).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}
