package repository

import (
	"therapy-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppUserRepository interface {
	Create(db *gorm.DB, user *entity.AppUser) error
	FindByEmail(db *gorm.DB, email string) (*entity.AppUser, error)
	FindByID(db *gorm.DB, id int64) (*entity.AppUser, error)
	FindByPersonID(db *gorm.DB, personID int64) (*entity.AppUser, error)
	Update(db *gorm.DB, user *entity.AppUser) error
}
