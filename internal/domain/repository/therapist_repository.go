package repository

import (
	"therapy-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TherapistRepository interface {
	Create(db *gorm.DB, therapist *entity.Therapist) error
	FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Therapist, int64, error)
	Search(db *gorm.DB, query string, therapyID *int64, limit int) ([]entity.Therapist, error)
	FindByPublicID(db *gorm.DB, publicID uuid.UUID) (*entity.Therapist, error)
	FindByID(db *gorm.DB, id int64) (*entity.Therapist, error)
	Update(db *gorm.DB, therapist *entity.Therapist) error
	ReplaceTherapies(db *gorm.DB, therapist *entity.Therapist, therapies []entity.Therapy) error
}
