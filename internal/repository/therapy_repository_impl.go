package repository

import (
	"errors"

	"therapy-clinic-api/internal/domain/entity"
	domainRepo "therapy-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type therapyRepository struct{}

func NewTherapyRepository() domainRepo.TherapyRepository {
	return &therapyRepository{}
}

func (r *therapyRepository) Create(db *gorm.DB, therapy *entity.Therapy) error {
	return db.Create(therapy).Error
}

func matchTherapy(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		like := containsPattern(search)
		return db.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}
}

func (r *therapyRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Therapy, int64, error) {
	var therapies []entity.Therapy
	var total int64

	if err := db.Model(&entity.Therapy{}).Scopes(matchTherapy(filter.Search)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(matchTherapy(filter.Search)).
		Order("name ASC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&therapies).Error
	if err != nil {
		return nil, 0, err
	}
	return therapies, total, nil
}

func (r *therapyRepository) FindActive(db *gorm.DB) ([]entity.Therapy, error) {
	var therapies []entity.Therapy
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&therapies).Error
	if err != nil {
		return nil, err
	}
	return therapies, nil
}

func (r *therapyRepository) FindByID(db *gorm.DB, id int64) (*entity.Therapy, error) {
	var therapy entity.Therapy
	err := db.Where("id = ?", id).First(&therapy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &therapy, nil
}

func (r *therapyRepository) FindByIDs(db *gorm.DB, ids []int64) ([]entity.Therapy, error) {
	var therapies []entity.Therapy
	if len(ids) == 0 {
		return therapies, nil
	}
	err := db.Where("id IN ?", ids).Order("name ASC").Find(&therapies).Error
	if err != nil {
		return nil, err
	}
	return therapies, nil
}

func (r *therapyRepository) Update(db *gorm.DB, therapy *entity.Therapy) error {
	return db.Model(therapy).
		Select("name", "code", "description", "price", "is_active").
		Updates(therapy).Error
}

func (r *therapyRepository) SetActive(db *gorm.DB, id int64, active bool) (int64, error) {
	result := db.Model(&entity.Therapy{}).Where("id = ?", id).Update("is_active", active)
	return result.RowsAffected, result.Error
}
