package repository

import (
	"therapy-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type TherapyRepository interface {
	Create(db *gorm.DB, therapy *entity.Therapy) error
	FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Therapy, int64, error)
	FindActive(db *gorm.DB) ([]entity.Therapy, error)
	FindByID(db *gorm.DB, id int64) (*entity.Therapy, error)
	FindByIDs(db *gorm.DB, ids []int64) ([]entity.Therapy, error)
	Update(db *gorm.DB, therapy *entity.Therapy) error
	SetActive(db *gorm.DB, id int64, active bool) (int64, error)
}
