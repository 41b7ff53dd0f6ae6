package repository

import (
	"errors"

	"therapy-clinic-api/internal/domain/entity"
	domainRepo "therapy-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type therapistRepository struct{}

func NewTherapistRepository() domainRepo.TherapistRepository {
	return &therapistRepository{}
}

func (r *therapistRepository) Create(db *gorm.DB, therapist *entity.Therapist) error {
	return db.Omit("User", "Therapies").Create(therapist).Error
}

func matchTherapistName(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.
			Joins("JOIN app_user ON app_user.id = therapist.user_id").
			Joins("JOIN person ON person.id = app_user.person_id")
		if search != "" {
			like := containsPattern(search)
			db = db.Where("person.name ILIKE ? OR person.lastname ILIKE ?", like, like)
		}
		return db
	}
}

func preloadTherapist(db *gorm.DB) *gorm.DB {
	return db.Preload("User.Person").Preload("User.Role").Preload("Therapies", func(db *gorm.DB) *gorm.DB {
		return db.Order("therapy.name ASC")
	})
}

func (r *therapistRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Therapist, int64, error) {
	var therapists []entity.Therapist
	var total int64

	if err := db.Model(&entity.Therapist{}).Scopes(matchTherapistName(filter.Search)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(matchTherapistName(filter.Search), preloadTherapist).
		Order("person.name ASC, person.lastname ASC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&therapists).Error
	if err != nil {
		return nil, 0, err
	}
	return therapists, total, nil
}

// Search returns therapists matching query, optionally only those offering therapyID.
func (r *therapistRepository) Search(db *gorm.DB, query string, therapyID *int64, limit int) ([]entity.Therapist, error) {
	var therapists []entity.Therapist
	tx := db.Scopes(matchTherapistName(query), preloadTherapist)
	if therapyID != nil {
		tx = tx.Where(
			"EXISTS (SELECT 1 FROM therapist_therapy tt WHERE tt.therapist_id = therapist.id AND tt.therapy_id = ?)",
			*therapyID,
		)
	}
	err := tx.Order("person.name ASC, person.lastname ASC").Limit(limit).Find(&therapists).Error
	if err != nil {
		return nil, err
	}
	return therapists, nil
}

func (r *therapistRepository) FindByPublicID(db *gorm.DB, publicID uuid.UUID) (*entity.Therapist, error) {
	var therapist entity.Therapist
	err := db.Scopes(preloadTherapist).Where("public_id = ?", publicID).First(&therapist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &therapist, nil
}

func (r *therapistRepository) FindByID(db *gorm.DB, id int64) (*entity.Therapist, error) {
	var therapist entity.Therapist
	err := db.Scopes(preloadTherapist).Where("id = ?", id).First(&therapist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &therapist, nil
}

func (r *therapistRepository) Update(db *gorm.DB, therapist *entity.Therapist) error {
	return db.Model(therapist).Select("resume", "onboard_date").Updates(therapist).Error
}

// ReplaceTherapies makes therapies the exact set offered by the therapist.
func (r *therapistRepository) ReplaceTherapies(db *gorm.DB, therapist *entity.Therapist, therapies []entity.Therapy) error {
	if len(therapies) == 0 {
		return db.Model(therapist).Association("Therapies").Clear()
	}
	return db.Model(therapist).Association("Therapies").Replace(therapies)
}
