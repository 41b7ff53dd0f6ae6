package repository

import (
	"therapy-clinic-api/internal/domain/entity"
	domainRepo "therapy-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type addressRepository struct{}

func NewAddressRepository() domainRepo.AddressRepository {
	return &addressRepository{}
}

func (r *addressRepository) FindByPersonID(db *gorm.DB, personID int64) ([]entity.Address, error) {
	var addresses []entity.Address
	err := db.Where("person_id = ?", personID).Order("id ASC").Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) Create(db *gorm.DB, address *entity.Address) error {
	return db.Create(address).Error
}

func (r *addressRepository) Update(db *gorm.DB, address *entity.Address) (int64, error) {
	result := db.Model(&entity.Address{}).
		Where("id = ? AND person_id = ?", address.ID, address.PersonID).
		Updates(map[string]interface{}{
			"street":  address.Street,
			"city":    address.City,
			"state":   address.State,
			"zip":     address.Zip,
			"country": address.Country,
			"type":    address.Type,
		})
	return result.RowsAffected, result.Error
}

func (r *addressRepository) Delete(db *gorm.DB, personID, id int64) (int64, error) {
	result := db.Where("id = ? AND person_id = ?", id, personID).Delete(&entity.Address{})
	return result.RowsAffected, result.Error
}
