package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	ClientID    uuid.UUID `json:"client_id" validate:"required"`
	TherapistID uuid.UUID `json:"therapist_id" validate:"required"`
	TherapyID   int64     `json:"therapy_id" validate:"required,gt=0"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	StartTime   string    `json:"start_time" validate:"required,hhmm"`          // Format: HH:MM
	EndTime     string    `json:"end_time" validate:"required,hhmm"`            // Format: HH:MM
	Room        string    `json:"room" validate:"max=50"`
	Status      string    `json:"status" validate:"omitempty,appointment_status"`
	Phone       string    `json:"phone" validate:"max=30"`
	Notes       string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ClientID    uuid.UUID `json:"client_id" validate:"required"`
	TherapistID uuid.UUID `json:"therapist_id" validate:"required"`
	TherapyID   int64     `json:"therapy_id" validate:"required,gt=0"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string    `json:"start_time" validate:"required,hhmm"`
	EndTime     string    `json:"end_time" validate:"required,hhmm"`
	Room        string    `json:"room" validate:"max=50"`
	Status      string    `json:"status" validate:"required,appointment_status"`
	Phone       string    `json:"phone" validate:"max=30"`
	Notes       string    `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,appointment_status"`
}

// AppointmentListQuery adds calendar filters to ListQuery.
type AppointmentListQuery struct {
	ListQuery
	From        string // Format: YYYY-MM-DD
	To          string // Format: YYYY-MM-DD
	TherapistID string // public id
	Status      string
}

// Response DTOs

type PersonSummary struct {
	PublicID uuid.UUID `json:"public_id"`
	Name     string    `json:"name"`
	Lastname string    `json:"lastname"`
}

type TherapySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type AppointmentResponse struct {
	ID        int64          `json:"id"`
	Client    PersonSummary  `json:"client"`
	Therapist PersonSummary  `json:"therapist"`
	Therapy   TherapySummary `json:"therapy"`
	Date      string         `json:"date"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Room      string         `json:"room"`
	Status    string         `json:"status"`
	Phone     string         `json:"phone"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
