package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateOrderRequest struct {
	SupplierID           *uint           `json:"supplierId"`
	OrderDate            string          `json:"orderDate"            validate:"required,datetime=2006-01-02"`
	ExpectedDeliveryDate string          `json:"expectedDeliveryDate" validate:"omitempty,datetime=2006-01-02"`
	Status               string          `json:"status"               validate:"omitempty,oneof=pending received cancelled"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	UserID               *uint           `json:"userId"`
}

type UpdateOrderRequest struct {
	ID                   *uint           `json:"id"`
	SupplierID           *uint           `json:"supplierId"`
	OrderDate            string          `json:"orderDate"            validate:"required,datetime=2006-01-02"`
	ExpectedDeliveryDate string          `json:"expectedDeliveryDate" validate:"omitempty,datetime=2006-01-02"`
	Status               string          `json:"status"               validate:"omitempty,oneof=pending received cancelled"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
}

type UpdateOrderStatusRequest struct {
	ID     *uint  `json:"id"`
	Status string `json:"status" validate:"required,oneof=pending received cancelled"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// OrderWithRefs is an orders row joined with the supplier and user names.
type OrderWithRefs struct {
	ID                   uint            `json:"id"`
	OrderNumber          string          `json:"order_number"`
	SupplierID           *uint           `json:"supplier_id"`
	OrderDate            time.Time       `json:"order_date"`
	ExpectedDeliveryDate time.Time       `json:"expected_delivery_date"`
	Status               string          `json:"status"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	UserID               *uint           `json:"user_id"`
	CreatedAt            time.Time       `json:"created_at"`
	SupplierName         *string         `json:"supplier_name"`
	UserName             *string         `json:"user_name"`
}

// OrderStats counts every order but only sums received ones.
type OrderStats struct {
	TotalOrders int64   `json:"totalOrders"`
	TotalValue  float64 `json:"totalValue"`
}
