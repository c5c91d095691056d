package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a stocked item. CategoryID/SupplierID are nullable references;
// the read queries resolve them to names via LEFT JOIN, so a product with a
// dangling or absent reference still lists (with a null name).
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"index;not null"`
	SKU         string `gorm:"column:sku;not null"`
	CategoryID  *uint  `gorm:"index"`
	SupplierID  *uint  `gorm:"index"`
	Description string
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// QuantityInStock at or below ReorderLevel marks the product as low stock.
	QuantityInStock int    `gorm:"not null;default:0"`
	ReorderLevel    int    `gorm:"not null;default:0"`
	ImageURL        string `gorm:"not null;default:''"`
	CreatedAt       time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}
