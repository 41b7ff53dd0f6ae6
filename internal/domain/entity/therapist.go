package entity

import (
	"time"

	"github.com/google/uuid"
)

// Therapist is a clinician. The therapist owns an account which owns a person.
type Therapist struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PublicID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"public_id"`
	UserID      int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	Resume      *string   `gorm:"type:text" json:"resume"`
	OnboardDate time.Time `gorm:"type:date;not null" json:"onboard_date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      AppUser   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Therapies []Therapy `gorm:"many2many:therapist_therapy;" json:"therapies,omitempty"`
}

func (Therapist) TableName() string {
	return "therapist"
}
