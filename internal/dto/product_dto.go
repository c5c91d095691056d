package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────
// Bodies use the camelCase keys of the frontend wire format.

type CreateProductRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CategoryID      *uint           `json:"categoryId"`
	SupplierID      *uint           `json:"supplierId"`
	Description     string          `json:"description"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	QuantityInStock int             `json:"quantityInStock"`
	ReorderLevel    int             `json:"reorderLevel"`
	ImageURL        string          `json:"imageUrl"`
}

// UpdateProductRequest carries the same payload as create; the id normally
// arrives in the query string and falls back to the body.
type UpdateProductRequest struct {
	ID              *uint           `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CategoryID      *uint           `json:"categoryId"`
	SupplierID      *uint           `json:"supplierId"`
	Description     string          `json:"description"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	QuantityInStock int             `json:"quantityInStock"`
	ReorderLevel    int             `json:"reorderLevel"`
	ImageURL        string          `json:"imageUrl"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────
// Responses keep the snake_case column names of the underlying rows, matching
// what the frontend has always consumed.

// ProductRow is a bare products row (getById does not join reference names).
type ProductRow struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CategoryID      *uint           `json:"category_id"`
	SupplierID      *uint           `json:"supplier_id"`
	Description     string          `json:"description"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	ReorderLevel    int             `json:"reorder_level"`
	ImageURL        string          `json:"image_url"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ProductWithRefs is a products row enriched with the LEFT-JOINed category
// and supplier names; either name is null when the reference is absent.
type ProductWithRefs struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CategoryID      *uint           `json:"category_id"`
	SupplierID      *uint           `json:"supplier_id"`
	Description     string          `json:"description"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	ReorderLevel    int             `json:"reorder_level"`
	ImageURL        string          `json:"image_url"`
	CreatedAt       time.Time       `json:"created_at"`
	CategoryName    *string         `json:"category_name"`
	SupplierName    *string         `json:"supplier_name"`
}

// ProductStats aggregates the whole catalog in a single query.
type ProductStats struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalValue    float64 `json:"totalValue"`
}
