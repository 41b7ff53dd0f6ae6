package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"therapy-clinic-api/internal/converter"
	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/delivery/http/middleware"
	"therapy-clinic-api/internal/domain/entity"
	"therapy-clinic-api/internal/domain/repository"
	"therapy-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTherapyNotFound   = errors.New("therapy not found")
	ErrTherapyCodeExists = errors.New("therapy code already exists")
	ErrInvalidPrice      = errors.New("price must not be negative")
)

type TherapyUsecase interface {
	GetAllTherapies(ctx context.Context, query *dto.ListQuery) ([]dto.TherapyResponse, int64, error)
	GetActiveTherapies(ctx context.Context) ([]dto.TherapyResponse, error)
	GetTherapy(ctx context.Context, id int64) (*dto.TherapyResponse, error)
	CreateTherapy(ctx context.Context, req *dto.CreateTherapyRequest) (*dto.TherapyResponse, error)
	UpdateTherapy(ctx context.Context, id int64, req *dto.UpdateTherapyRequest) (*dto.TherapyResponse, error)
	DeactivateTherapy(ctx context.Context, id int64) error
}

type therapyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	therapyRepo  repository.TherapyRepository
	auditService service.AuditService
}

func NewTherapyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	therapyRepo repository.TherapyRepository,
	auditService service.AuditService,
) TherapyUsecase {
	return &therapyUsecase{
		db:           db,
		log:          log,
		therapyRepo:  therapyRepo,
		auditService: auditService,
	}
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (u *therapyUsecase) GetAllTherapies(ctx context.Context, query *dto.ListQuery) ([]dto.TherapyResponse, int64, error) {
	therapies, total, err := u.therapyRepo.FindAll(u.db.WithContext(ctx), query.ToFilter())
	if err != nil {
		u.log.Warnf("Failed to find therapies: %+v", err)
		return nil, 0, err
	}

	return converter.TherapiesToResponses(therapies), total, nil
}

func (u *therapyUsecase) GetActiveTherapies(ctx context.Context) ([]dto.TherapyResponse, error) {
	therapies, err := u.therapyRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active therapies: %+v", err)
		return nil, err
	}

	return converter.TherapiesToResponses(therapies), nil
}

func (u *therapyUsecase) GetTherapy(ctx context.Context, id int64) (*dto.TherapyResponse, error) {
	therapy, err := u.therapyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find therapy: %+v", err)
		return nil, err
	}
	if therapy == nil {
		return nil, ErrTherapyNotFound
	}

	return converter.TherapyToResponse(therapy), nil
}

func (u *therapyUsecase) CreateTherapy(ctx context.Context, req *dto.CreateTherapyRequest) (*dto.TherapyResponse, error) {
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	active := true
	therapy := &entity.Therapy{
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.TrimSpace(req.Code),
		Description: optionalText(req.Description),
		Price:       req.Price,
		IsActive:    &active,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.therapyRepo.Create(tx, therapy); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrTherapyCodeExists
		}
		u.log.Warnf("Failed to create therapy: %+v", err)
		return nil, err
	}

	response := converter.TherapyToResponse(therapy)
	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionTherapyCreate, "therapy", strconv.FormatInt(therapy.ID, 10), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *therapyUsecase) UpdateTherapy(ctx context.Context, id int64, req *dto.UpdateTherapyRequest) (*dto.TherapyResponse, error) {
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	therapy, err := u.therapyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find therapy: %+v", err)
		return nil, err
	}
	if therapy == nil {
		return nil, ErrTherapyNotFound
	}

	oldValue := converter.TherapyToResponse(therapy)

	therapy.Name = strings.TrimSpace(req.Name)
	therapy.Code = strings.TrimSpace(req.Code)
	therapy.Description = optionalText(req.Description)
	therapy.Price = req.Price
	therapy.IsActive = req.IsActive

	if err := u.therapyRepo.Update(tx, therapy); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrTherapyCodeExists
		}
		u.log.Warnf("Failed to update therapy: %+v", err)
		return nil, err
	}

	newValue := converter.TherapyToResponse(therapy)
	if err := u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionTherapyUpdate, "therapy", strconv.FormatInt(id, 10), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeactivateTherapy hides a therapy from the active catalog. Rows are never
// hard-deleted since appointments keep referencing them.
func (u *therapyUsecase) DeactivateTherapy(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.therapyRepo.SetActive(tx, id, false)
	if err != nil {
		u.log.Warnf("Failed to deactivate therapy: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrTherapyNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionTherapyDeactivate, "therapy", strconv.FormatInt(id, 10), map[string]interface{}{"id": id}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
