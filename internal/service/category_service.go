package service

import (
	"context"
	"errors"

	"inventra/internal/apierror"
	"inventra/internal/dto"
	"inventra/internal/model"
	"inventra/internal/repository"

	"gorm.io/gorm"
)

type CategoryService interface {
	List(ctx context.Context) ([]dto.CategoryRow, error)
	GetByID(ctx context.Context, id uint) (*dto.CategoryRow, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) error
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryRow, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return rows, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (*dto.CategoryRow, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierror.Server(err)
	}
	return row, nil
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (uint, error) {
	c := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apierror.Conflict("Category already exists")
		}
		return 0, apierror.Server(err)
	}
	return c.ID, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) error {
	c := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.repo.Update(ctx, id, c); err != nil {
		return apierror.Server(err)
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Server(err)
	}
	return nil
}
