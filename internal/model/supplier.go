package model

import "time"

// Supplier holds the commercial contact data for a product source.
type Supplier struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreatedAt     time.Time

	Products []Product `gorm:"foreignKey:SupplierID"`
}
