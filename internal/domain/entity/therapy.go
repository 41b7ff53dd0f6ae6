package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Therapy is an entry of the service catalog.
type Therapy struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Code        string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Description *string         `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	IsActive    *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Therapy) TableName() string {
	return "therapy"
}

// Active dereferences IsActive, treating a missing value as active.
func (t *Therapy) Active() bool {
	return t.IsActive == nil || *t.IsActive
}
