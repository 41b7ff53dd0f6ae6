package repository

import (
	"errors"

	"therapy-clinic-api/internal/domain/entity"
	domainRepo "therapy-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientRepository struct{}

func NewClientRepository() domainRepo.ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Create(db *gorm.DB, client *entity.Client) error {
	return db.Omit("Person").Create(client).Error
}

// matchPersonName joins the owning person and applies a case-insensitive
// substring match on name or lastname.
func matchPersonName(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Joins("JOIN person ON person.id = client.person_id")
		if search != "" {
			like := containsPattern(search)
			db = db.Where("person.name ILIKE ? OR person.lastname ILIKE ?", like, like)
		}
		return db
	}
}

func (r *clientRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Client, int64, error) {
	var clients []entity.Client
	var total int64

	if err := db.Model(&entity.Client{}).Scopes(matchPersonName(filter.Search)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(matchPersonName(filter.Search)).
		Preload("Person").
		Order("client.created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *clientRepository) Search(db *gorm.DB, query string, limit int) ([]entity.Client, error) {
	var clients []entity.Client
	err := db.Scopes(matchPersonName(query)).
		Preload("Person").
		Order("person.name ASC, person.lastname ASC").
		Limit(limit).
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) FindByPublicID(db *gorm.DB, publicID uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := db.Preload("Person").Where("public_id = ?", publicID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindByID(db *gorm.DB, id int64) (*entity.Client, error) {
	var client entity.Client
	err := db.Preload("Person").Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) UpdateByPublicID(db *gorm.DB, client *entity.Client) error {
	return db.Model(&entity.Client{}).
		Where("public_id = ?", client.PublicID).
		Update("onboard_date", client.OnboardDate).Error
}
