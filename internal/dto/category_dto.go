package dto

import "time"

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	ID          *uint  `json:"id"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

type CategoryRow struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
