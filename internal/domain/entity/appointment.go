package entity

import "time"

// AppointmentStatus represents the status of an appointment.
// Any status may follow any other; only the value set is closed.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists the allowed values in display order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

// IsValid reports whether s belongs to the allowed value set.
func (s AppointmentStatus) IsValid() bool {
	for _, v := range AppointmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Appointment books a client with a therapist for one therapy in a room.
type Appointment struct {
	ID          int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID    int64             `gorm:"not null;index" json:"client_id"`
	TherapistID int64             `gorm:"not null;index" json:"therapist_id"`
	TherapyID   int64             `gorm:"not null;index" json:"therapy_id"`
	Date        time.Time         `gorm:"type:date;not null;index" json:"date"`
	StartTime   string            `gorm:"type:time;not null" json:"start_time"`
	EndTime     string            `gorm:"type:time;not null" json:"end_time"`
	Room        string            `gorm:"type:varchar(50)" json:"room"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Phone       string            `gorm:"type:varchar(30)" json:"phone"`
	Notes       string            `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client    Client    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Therapist Therapist `gorm:"foreignKey:TherapistID" json:"therapist,omitempty"`
	Therapy   Therapy   `gorm:"foreignKey:TherapyID" json:"therapy,omitempty"`
}

func (Appointment) TableName() string {
	return "appointment"
}
