package repository

import (
	"therapy-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(db *gorm.DB, person *entity.Person) error
	FindByID(db *gorm.DB, id int64) (*entity.Person, error)
	Update(db *gorm.DB, person *entity.Person) error
}
