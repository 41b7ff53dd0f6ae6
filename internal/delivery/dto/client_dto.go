package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateClientRequest struct {
	Name     string `json:"name" validate:"notblank,max=100"`
	Lastname string `json:"lastname" validate:"notblank,max=100"`
}

type AddressRequest struct {
	ID      int64  `json:"id,omitempty" validate:"gte=0"`
	Street  string `json:"street" validate:"max=255"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=100"`
	Zip     string `json:"zip" validate:"max=20"`
	Country string `json:"country" validate:"max=100"`
	Type    string `json:"type" validate:"max=50"`
}

// AccountUpdateRequest edits the login account attached to a person.
type AccountUpdateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Status   string `json:"status" validate:"required,account_status"`
}

// UpdateClientDetailsRequest is the whole edited aggregate. Addresses is the
// complete desired list: omitted stored addresses are deleted.
type UpdateClientDetailsRequest struct {
	Name        string                `json:"name" validate:"notblank,max=100"`
	Lastname    string                `json:"lastname" validate:"notblank,max=100"`
	Birthdate   *string               `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	OnboardDate string                `json:"onboard_date" validate:"required,datetime=2006-01-02"`
	Addresses   []AddressRequest      `json:"addresses" validate:"dive"`
	Account     *AccountUpdateRequest `json:"account"`
}

// Response DTOs

type AddressResponse struct {
	ID      int64  `json:"id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Type    string `json:"type"`
}

type ClientResponse struct {
	PublicID    uuid.UUID `json:"public_id"`
	Name        string    `json:"name"`
	Lastname    string    `json:"lastname"`
	Birthdate   *string   `json:"birthdate"`
	OnboardDate string    `json:"onboard_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type ClientDetailsResponse struct {
	ClientResponse
	Addresses []AddressResponse `json:"addresses"`
	Account   *UserResponse     `json:"account,omitempty"`
}
