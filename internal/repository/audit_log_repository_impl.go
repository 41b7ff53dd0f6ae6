package repository

import (
	"errors"

	"therapy-clinic-api/internal/domain/entity"
	domainRepo "therapy-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Omit("User").Create(log).Error
}

func auditLogScope(filter *entity.AuditLogFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Search != "" {
			like := containsPattern(filter.Search)
			db = db.Where("action ILIKE ? OR metadata::text ILIKE ?", like, like)
		}
		if filter.Action != "" {
			db = db.Where("action LIKE ?", prefixPattern(filter.Action))
		}
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.From != nil {
			db = db.Where("created_at >= ?", *filter.From)
		}
		if filter.To != nil {
			db = db.Where("created_at < ?", *filter.To)
		}
		return db
	}
}

func (r *auditLogRepository) FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	var logs []entity.AuditLog
	var total int64
	scope := auditLogScope(filter)

	if err := db.Model(&entity.AuditLog{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(scope).
		Preload("User.Person").
		Preload("User.Role").
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Preload("User.Person").Preload("User.Role").Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
