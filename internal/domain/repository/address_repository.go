package repository

import (
	"therapy-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

// AddressRepository scopes every write by person so an address can never
// move to, or be removed from, a person that does not own it.
type AddressRepository interface {
	FindByPersonID(db *gorm.DB, personID int64) ([]entity.Address, error)
	Create(db *gorm.DB, address *entity.Address) error
	Update(db *gorm.DB, address *entity.Address) (int64, error)
	Delete(db *gorm.DB, personID, id int64) (int64, error)
}
