package dto

import "time"

type CreateSupplierRequest struct {
	Name          string `json:"name"          validate:"required,min=1,max=120"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"         validate:"omitempty,email"`
	Phone         string `json:"phone"         validate:"omitempty,phone"`
	Address       string `json:"address"`
}

type UpdateSupplierRequest struct {
	ID            *uint  `json:"id"`
	Name          string `json:"name"          validate:"required,min=1,max=120"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"         validate:"omitempty,email"`
	Phone         string `json:"phone"         validate:"omitempty,phone"`
	Address       string `json:"address"`
}

type SupplierRow struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
}
