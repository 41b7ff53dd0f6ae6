package entity

import "time"

// Person holds the identity fields shared by clients and therapists.
// A person row is owned by exactly one client or one account.
type Person struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null;index" json:"name"`
	Lastname  string     `gorm:"type:varchar(100);not null;index" json:"lastname"`
	Birthdate *time.Time `gorm:"type:date" json:"birthdate"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Addresses []Address `gorm:"foreignKey:PersonID" json:"addresses,omitempty"`
}

func (Person) TableName() string {
	return "person"
}

// FullName joins name and lastname the way lists display them.
func (p *Person) FullName() string {
	if p.Lastname == "" {
		return p.Name
	}
	return p.Name + " " + p.Lastname
}
