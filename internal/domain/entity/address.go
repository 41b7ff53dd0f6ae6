package entity

import "time"

// Address belongs to exactly one person.
type Address struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonID  int64     `gorm:"not null;index" json:"person_id"`
	Street    string    `gorm:"type:varchar(255)" json:"street"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	State     string    `gorm:"type:varchar(100)" json:"state"`
	Zip       string    `gorm:"type:varchar(20)" json:"zip"`
	Country   string    `gorm:"type:varchar(100)" json:"country"`
	Type      string    `gorm:"type:varchar(50)" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Address) TableName() string {
	return "address"
}

// IsPersisted reports whether the address already has a row in the database.
func (a *Address) IsPersisted() bool {
	return a.ID != 0
}
