package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"therapy-clinic-api/internal/converter"
	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/domain/entity"
	"therapy-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
	ErrInvalidUserID    = errors.New("invalid user id")
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, query *dto.AuditLogListQuery) ([]dto.AuditLogResponse, int64, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// auditLogFilter turns the query string into a repository filter. The date
// range covers whole days, so To is moved to the start of the next day.
func auditLogFilter(query *dto.AuditLogListQuery) (*entity.AuditLogFilter, error) {
	filter := &entity.AuditLogFilter{
		ListFilter: *query.ToFilter(),
		Action:     strings.TrimSpace(query.Action),
	}

	if raw := strings.TrimSpace(query.UserID); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return nil, ErrInvalidUserID
		}
		filter.UserID = &userID
	}

	var err error
	if filter.From, err = converter.ParseOptionalDate(&query.From); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if filter.To, err = converter.ParseOptionalDate(&query.To); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, ErrInvalidDateRange
	}
	if filter.To != nil {
		end := filter.To.AddDate(0, 0, 1)
		filter.To = &end
	}
	return filter, nil
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, query *dto.AuditLogListQuery) ([]dto.AuditLogResponse, int64, error) {
	filter, err := auditLogFilter(query)
	if err != nil {
		return nil, 0, err
	}

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, 0, err
	}

	return converter.AuditLogsToResponses(logs), total, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
