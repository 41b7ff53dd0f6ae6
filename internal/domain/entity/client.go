package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is a person receiving therapy at the clinic.
type Client struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PublicID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"public_id"`
	PersonID    int64     `gorm:"not null;uniqueIndex" json:"person_id"`
	OnboardDate time.Time `gorm:"type:date;not null" json:"onboard_date"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Person Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (Client) TableName() string {
	return "client"
}

// ClientDetails is the edit aggregate of a client: the client row, its person,
// the person's addresses and the optional login account.
type ClientDetails struct {
	Client    Client
	Addresses []Address
	Account   *AppUser
}
