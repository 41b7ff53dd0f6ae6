package repository

import (
	"errors"

	"therapy-clinic-api/internal/domain/entity"
	domainRepo "therapy-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type personRepository struct{}

func NewPersonRepository() domainRepo.PersonRepository {
	return &personRepository{}
}

func (r *personRepository) Create(db *gorm.DB, person *entity.Person) error {
	return db.Omit("Addresses").Create(person).Error
}

func (r *personRepository) FindByID(db *gorm.DB, id int64) (*entity.Person, error) {
	var person entity.Person
	err := db.Where("id = ?", id).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

// Update writes every editable column, including a cleared birthdate.
func (r *personRepository) Update(db *gorm.DB, person *entity.Person) error {
	return db.Model(person).Select("name", "lastname", "birthdate").Updates(person).Error
}
