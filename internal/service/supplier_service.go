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

type SupplierService interface {
	List(ctx context.Context) ([]dto.SupplierRow, error)
	GetByID(ctx context.Context, id uint) (*dto.SupplierRow, error)
	Create(ctx context.Context, req dto.CreateSupplierRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) error
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierRow, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return rows, nil
}

func (s *supplierService) GetByID(ctx context.Context, id uint) (*dto.SupplierRow, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierror.Server(err)
	}
	return row, nil
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (uint, error) {
	sup := &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return 0, apierror.Server(err)
	}
	return sup.ID, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) error {
	sup := &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	}
	if err := s.repo.Update(ctx, id, sup); err != nil {
		return apierror.Server(err)
	}
	return nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Server(err)
	}
	return nil
}
