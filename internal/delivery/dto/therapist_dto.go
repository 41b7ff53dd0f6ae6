package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTherapistRequest struct {
	Name       string  `json:"name" validate:"notblank,max=100"`
	Lastname   string  `json:"lastname" validate:"notblank,max=100"`
	Birthdate  *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Email      string  `json:"email" validate:"required,email"`
	Username   string  `json:"username" validate:"required,min=3,max=100"`
	Password   string  `json:"password" validate:"required,min=8"`
	Resume     *string `json:"resume"`
	TherapyIDs []int64 `json:"therapy_ids" validate:"dive,gt=0"`
}

type UpdateTherapistRequest struct {
	Name        string  `json:"name" validate:"notblank,max=100"`
	Lastname    string  `json:"lastname" validate:"notblank,max=100"`
	Birthdate   *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Email       string  `json:"email" validate:"required,email"`
	Username    string  `json:"username" validate:"required,min=3,max=100"`
	Status      string  `json:"status" validate:"required,account_status"`
	Resume      *string `json:"resume"`
	OnboardDate string  `json:"onboard_date" validate:"required,datetime=2006-01-02"`
	TherapyIDs  []int64 `json:"therapy_ids" validate:"dive,gt=0"`
}

// Response DTOs

type TherapistResponse struct {
	PublicID    uuid.UUID         `json:"public_id"`
	Name        string            `json:"name"`
	Lastname    string            `json:"lastname"`
	Birthdate   *string           `json:"birthdate"`
	Email       string            `json:"email"`
	Username    string            `json:"username"`
	Role        string            `json:"role"`
	Status      string            `json:"status"`
	Resume      *string           `json:"resume"`
	OnboardDate string            `json:"onboard_date"`
	Therapies   []TherapyResponse `json:"therapies"`
	CreatedAt   time.Time         `json:"created_at"`
}
