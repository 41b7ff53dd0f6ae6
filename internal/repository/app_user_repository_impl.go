package repository

import (
	"errors"

	"therapy-clinic-api/internal/domain/entity"
	domainRepo "therapy-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appUserRepository struct{}

func NewAppUserRepository() domainRepo.AppUserRepository {
	return &appUserRepository{}
}

func (r *appUserRepository) Create(db *gorm.DB, user *entity.AppUser) error {
	return db.Omit("Role", "Person").Create(user).Error
}

func (r *appUserRepository) findOne(db *gorm.DB, column string, value interface{}) (*entity.AppUser, error) {
	var user entity.AppUser
	err := db.Preload("Role").Preload("Person").Where(column+" = ?", value).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *appUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.AppUser, error) {
	return r.findOne(db, "email", email)
}

func (r *appUserRepository) FindByID(db *gorm.DB, id int64) (*entity.AppUser, error) {
	return r.findOne(db, "id", id)
}

func (r *appUserRepository) FindByPersonID(db *gorm.DB, personID int64) (*entity.AppUser, error) {
	return r.findOne(db, "person_id", personID)
}

func (r *appUserRepository) Update(db *gorm.DB, user *entity.AppUser) error {
	return db.Model(user).
		Select("email", "username", "role_id", "status", "password").
		Updates(user).Error
}
