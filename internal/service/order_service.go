package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"inventra/internal/apierror"
	"inventra/internal/dto"
	"inventra/internal/model"
	"inventra/internal/repository"

	"gorm.io/gorm"
)

const orderDateLayout = "2006-01-02"

type OrderService interface {
	GetAll(ctx context.Context) ([]dto.OrderWithRefs, error)
	GetByID(ctx context.Context, id uint) (*dto.OrderWithRefs, error)
	ByStatus(ctx context.Context, status string) ([]dto.OrderWithRefs, error)
	Stats(ctx context.Context) (*dto.OrderStats, error)
	Create(ctx context.Context, req dto.CreateOrderRequest) (uint, string, error)
	Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) GetAll(ctx context.Context) ([]dto.OrderWithRefs, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return rows, nil
}

func (s *orderService) GetByID(ctx context.Context, id uint) (*dto.OrderWithRefs, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierror.Server(err)
	}
	return row, nil
}

func (s *orderService) ByStatus(ctx context.Context, status string) ([]dto.OrderWithRefs, error) {
	rows, err := s.repo.ByStatus(ctx, status)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return rows, nil
}

func (s *orderService) Stats(ctx context.Context) (*dto.OrderStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apierror.Server(err)
	}
	return stats, nil
}

// Create assigns the next PO-YYYY-NNN number and inserts the order.
// Returns the generated id and order number.
func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (uint, string, error) {
	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		return 0, "", apierror.Server(err)
	}

	orderDate, expected, err := parseOrderDates(req.OrderDate, req.ExpectedDeliveryDate)
	if err != nil {
		return 0, "", apierror.Server(err)
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	o := &model.Order{
		OrderNumber:          number,
		SupplierID:           req.SupplierID,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expected,
		Status:               status,
		TotalAmount:          req.TotalAmount,
		UserID:               req.UserID,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return 0, "", apierror.Server(err)
	}
	return o.ID, o.OrderNumber, nil
}

func (s *orderService) Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) error {
	orderDate, expected, err := parseOrderDates(req.OrderDate, req.ExpectedDeliveryDate)
	if err != nil {
		return apierror.Server(err)
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	o := &model.Order{
		SupplierID:           req.SupplierID,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expected,
		Status:               status,
		TotalAmount:          req.TotalAmount,
	}
	if err := s.repo.Update(ctx, id, o); err != nil {
		return apierror.Server(err)
	}
	return nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return apierror.Server(err)
	}
	return nil
}

func (s *orderService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Server(err)
	}
	return nil
}

// nextOrderNumber continues the PO-YYYY-NNN sequence from the newest order.
// The counter restarts at 001 when there are no orders; the year always
// reflects the current year, so a rollover restarts numbering visually while
// uniqueness is kept by the full string.
func (s *orderService) nextOrderNumber(ctx context.Context) (string, error) {
	last, err := s.repo.LastOrderNumber(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	year := time.Now().Year()
	next := 1
	if parts := strings.Split(last, "-"); len(parts) == 3 {
		if n, err := strconv.Atoi(parts[2]); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("PO-%d-%03d", year, next), nil
}

func parseOrderDates(orderDate, expected string) (time.Time, time.Time, error) {
	od, err := time.Parse(orderDateLayout, orderDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	var ed time.Time
	if expected != "" {
		ed, err = time.Parse(orderDateLayout, expected)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return od, ed, nil
}
