package repository

import (
	"therapy-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(db *gorm.DB, client *entity.Client) error
	FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Client, int64, error)
	Search(db *gorm.DB, query string, limit int) ([]entity.Client, error)
	FindByPublicID(db *gorm.DB, publicID uuid.UUID) (*entity.Client, error)
	FindByID(db *gorm.DB, id int64) (*entity.Client, error)
	UpdateByPublicID(db *gorm.DB, client *entity.Client) error
}
