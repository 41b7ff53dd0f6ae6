package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTherapyRequest struct {
	Name        string          `json:"name" validate:"notblank,max=255"`
	Code        string          `json:"code" validate:"notblank,max=50"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type UpdateTherapyRequest struct {
	Name        string          `json:"name" validate:"notblank,max=255"`
	Code        string          `json:"code" validate:"notblank,max=50"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    *bool           `json:"is_active" validate:"required"`
}

// Response DTOs

type TherapyResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
