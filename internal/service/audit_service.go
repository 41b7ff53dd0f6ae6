package service

import (
	"context"

	"therapy-clinic-api/internal/domain/entity"
	"therapy-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *int64, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *int64, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, userID *int64, action string, entityName string, entityID string, oldValue interface{}) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *int64, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(ctx, tx, userID, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *int64, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *int64, action string, entityName string, entityID string, oldValue interface{}) error {
	return s.write(ctx, tx, userID, action, entityName, entityID, oldValue, nil)
}

// write stores the entry on tx, or on a fresh session when the caller
// has no transaction open.
func (s *auditService) write(ctx context.Context, tx *gorm.DB, userID *int64, action, entityName, entityID string, oldValue, newValue interface{}) error {
	if tx == nil {
		tx = s.db.WithContext(ctx)
	}

	auditLog := &entity.AuditLog{
		UserID: userID,
		Action: action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
