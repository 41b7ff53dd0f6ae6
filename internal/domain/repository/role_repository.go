package repository

import (
	"therapy-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
	FindByID(db *gorm.DB, id int) (*entity.Role, error)
}
