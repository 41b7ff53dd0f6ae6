package entity

import "time"

// AccountStatus is the lifecycle state of an application account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusInactive  AccountStatus = "inactive"
	AccountStatusSuspended AccountStatus = "suspended"
)

// IsValid reports whether s is one of the known account states.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive, AccountStatusSuspended:
		return true
	}
	return false
}

// AppUser is the login account attached to a person.
type AppUser struct {
	ID        int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonID  int64         `gorm:"not null;uniqueIndex" json:"person_id"`
	RoleID    int           `gorm:"not null;index" json:"role_id"`
	Email     string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username  string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password  string        `gorm:"type:text;not null" json:"-"`
	Status    AccountStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role   Role   `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Person Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (AppUser) TableName() string {
	return "app_user"
}

// IsActive checks if the account may sign in
func (u *AppUser) IsActive() bool {
	return u.Status == AccountStatusActive
}
