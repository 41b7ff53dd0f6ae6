package entity

// Role represents an account role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Role) TableName() string {
	return "role"
}

// Role ID constants, seeded by the initial migration
const (
	RoleIDAdmin     = 1
	RoleIDTherapist = 2
	RoleIDStaff     = 3
)

// RoleNames constants
const (
	RoleAdmin     = "admin"
	RoleTherapist = "therapist"
	RoleStaff     = "staff"
)
