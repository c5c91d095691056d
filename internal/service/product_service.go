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

type ProductService interface {
	GetAll(ctx context.Context) ([]dto.ProductWithRefs, error)
	// GetByID returns (nil, nil) when nothing matches; the handler turns
	// that into an empty object, not a 404.
	GetByID(ctx context.Context, id uint) (*dto.ProductRow, error)
	Search(ctx context.Context, keyword string) ([]dto.ProductWithRefs, error)
	Stats(ctx context.Context) (*dto.ProductStats, error)
	LowStock(ctx context.Context) ([]dto.ProductWithRefs, error)
	ByCategory(ctx context.Context, categoryID uint) ([]dto.ProductWithRefs, error)
	BySupplier(ctx context.Context, supplierID uint) ([]dto.ProductWithRefs, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) GetAll(ctx context.Context) ([]dto.ProductWithRefs, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return rows, nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductRow, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierror.Server(err)
	}
	return row, nil
}

func (s *productService) Search(ctx context.Context, keyword string) ([]dto.ProductWithRefs, error) {
	rows, err := s.repo.Search(ctx, keyword)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return rows, nil
}

func (s *productService) Stats(ctx context.Context) (*dto.ProductStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return stats, nil
}

func (s *productService) LowStock(ctx context.Context) ([]dto.ProductWithRefs, error) {
	rows, err := s.repo.LowStock(ctx)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return rows, nil
}

func (s *productService) ByCategory(ctx context.Context, categoryID uint) ([]dto.ProductWithRefs, error) {
	rows, err := s.repo.ByCategory(ctx, categoryID)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return rows, nil
}

func (s *productService) BySupplier(ctx context.Context, supplierID uint) ([]dto.ProductWithRefs, error) {
	rows, err := s.repo.BySupplier(ctx, supplierID)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return rows, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (uint, error) {
	p := &model.Product{
		Name:            req.Name,
		SKU:             req.SKU,
		CategoryID:      req.CategoryID,
		SupplierID:      req.SupplierID,
		Description:     req.Description,
		UnitPrice:       req.UnitPrice,
		QuantityInStock: req.QuantityInStock,
		ReorderLevel:    req.ReorderLevel,
		ImageURL:        req.ImageURL, // "" when omitted
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return 0, apierror.Server(err)
	}
	return p.ID, nil
}

// Update overwrites all listed fields unconditionally; a missing id is not
// an error, by contract.
func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) error {
	p := &model.Product{
		Name:            req.Name,
		SKU:             req.SKU,
		CategoryID:      req.CategoryID,
		SupplierID:      req.SupplierID,
		Description:     req.Description,
		UnitPrice:       req.UnitPrice,
		QuantityInStock: req.QuantityInStock,
		ReorderLevel:    req.ReorderLevel,
		ImageURL:        req.ImageURL,
	}
	if err := s.repo.Update(ctx, id, p); err != nil {
		return apierror.Server(err)
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Server(err)
	}
	return nil
}
