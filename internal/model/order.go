package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Orders move pending → received | cancelled.
const (
	OrderStatusPending   = "pending"
	OrderStatusReceived  = "received"
	OrderStatusCancelled = "cancelled"
)

// Order is a purchase order placed with a supplier.
// OrderNumber follows the PO-YYYY-NNN sequence.
type Order struct {
	ID                   uint   `gorm:"primaryKey"`
	OrderNumber          string `gorm:"uniqueIndex;not null"`
	SupplierID           *uint  `gorm:"index"`
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	Status               string          `gorm:"type:varchar(20);not null;default:'pending'"`
	TotalAmount          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	UserID               *uint           `gorm:"index"`
	CreatedAt            time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
	User     *User     `gorm:"foreignKey:UserID"`
}
