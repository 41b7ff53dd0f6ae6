package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"therapy-clinic-api/internal/converter"
	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/delivery/http/middleware"
	"therapy-clinic-api/internal/domain/entity"
	"therapy-clinic-api/internal/domain/repository"
	"therapy-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrRoleNotFound      = errors.New("role not found")
)

type TherapistUsecase interface {
	GetAllTherapists(ctx context.Context, query *dto.ListQuery) ([]dto.TherapistResponse, int64, error)
	SearchTherapists(ctx context.Context, query string, therapyID *int64) ([]dto.TherapistResponse, error)
	GetTherapist(ctx context.Context, publicID uuid.UUID) (*dto.TherapistResponse, error)
	CreateTherapist(ctx context.Context, req *dto.CreateTherapistRequest) (*dto.TherapistResponse, error)
	UpdateTherapist(ctx context.Context, publicID uuid.UUID, req *dto.UpdateTherapistRequest) (*dto.TherapistResponse, error)
}

type therapistUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	personRepo    repository.PersonRepository
	userRepo      repository.AppUserRepository
	roleRepo      repository.RoleRepository
	therapistRepo repository.TherapistRepository
	therapyRepo   repository.TherapyRepository
	tokenStore    service.TokenStore
	auditService  service.AuditService
}

func NewTherapistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	personRepo repository.PersonRepository,
	userRepo repository.AppUserRepository,
	roleRepo repository.RoleRepository,
	therapistRepo repository.TherapistRepository,
	therapyRepo repository.TherapyRepository,
	tokenStore service.TokenStore,
	auditService service.AuditService,
) TherapistUsecase {
	return &therapistUsecase{
		db:            db,
		log:           log,
		personRepo:    personRepo,
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		therapistRepo: therapistRepo,
		therapyRepo:   therapyRepo,
		tokenStore:    tokenStore,
		auditService:  auditService,
	}
}

func (u *therapistUsecase) GetAllTherapists(ctx context.Context, query *dto.ListQuery) ([]dto.TherapistResponse, int64, error) {
	therapists, total, err := u.therapistRepo.FindAll(u.db.WithContext(ctx), query.ToFilter())
	if err != nil {
		u.log.Warnf("Failed to find therapists: %+v", err)
		return nil, 0, err
	}

	return converter.TherapistsToResponses(therapists), total, nil
}

func (u *therapistUsecase) SearchTherapists(ctx context.Context, query string, therapyID *int64) ([]dto.TherapistResponse, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < entity.MinSearchLength {
		return []dto.TherapistResponse{}, nil
	}

	therapists, err := u.therapistRepo.Search(u.db.WithContext(ctx), query, therapyID, entity.SearchResultLimit)
	if err != nil {
		u.log.Warnf("Failed to search therapists: %+v", err)
		return nil, err
	}

	return converter.TherapistsToResponses(therapists), nil
}

func (u *therapistUsecase) GetTherapist(ctx context.Context, publicID uuid.UUID) (*dto.TherapistResponse, error) {
	therapist, err := u.therapistRepo.FindByPublicID(u.db.WithContext(ctx), publicID)
	if err != nil {
		u.log.Warnf("Failed to find therapist: %+v", err)
		return nil, err
	}
	if therapist == nil {
		return nil, ErrTherapistNotFound
	}

	return converter.TherapistToResponse(therapist), nil
}

// resolveTherapies loads every requested therapy or fails with ErrTherapyNotFound.
func (u *therapistUsecase) resolveTherapies(db *gorm.DB, ids []int64) ([]entity.Therapy, error) {
	unique := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	therapies, err := u.therapyRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find therapies: %+v", err)
		return nil, err
	}
	if len(therapies) != len(unique) {
		return nil, ErrTherapyNotFound
	}
	return therapies, nil
}

func accountWriteError(err error) error {
	if isDuplicateKeyError(err, "email") {
		return ErrEmailAlreadyExists
	}
	if isDuplicateKeyError(err, "username") {
		return ErrUsernameAlreadyExists
	}
	if isForeignKeyError(err, "role") {
		return ErrRoleNotFound
	}
	return nil
}

// CreateTherapist creates person, account and therapist in one transaction.
func (u *therapistUsecase) CreateTherapist(ctx context.Context, req *dto.CreateTherapistRequest) (*dto.TherapistResponse, error) {
	birthdate, err := converter.ParseOptionalDate(req.Birthdate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByName(tx, entity.RoleTherapist)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	therapies, err := u.resolveTherapies(tx, req.TherapyIDs)
	if err != nil {
		return nil, err
	}

	person := &entity.Person{
		Name:      strings.TrimSpace(req.Name),
		Lastname:  strings.TrimSpace(req.Lastname),
		Birthdate: birthdate,
	}
	if err := u.personRepo.Create(tx, person); err != nil {
		u.log.Warnf("Failed to create person: %+v", err)
		return nil, err
	}

	user := &entity.AppUser{
		PersonID: person.ID,
		RoleID:   role.ID,
		Email:    strings.TrimSpace(req.Email),
		Username: strings.TrimSpace(req.Username),
		Password: string(hashedPassword),
		Status:   entity.AccountStatusActive,
	}
	if err := u.userRepo.Create(tx, user); err != nil {
		if mapped := accountWriteError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	therapist := &entity.Therapist{
		PublicID:    uuid.New(),
		UserID:      user.ID,
		Resume:      req.Resume,
		OnboardDate: today(),
	}
	if err := u.therapistRepo.Create(tx, therapist); err != nil {
		u.log.Warnf("Failed to create therapist: %+v", err)
		return nil, err
	}

	if len(therapies) > 0 {
		if err := u.therapistRepo.ReplaceTherapies(tx, therapist, therapies); err != nil {
			u.log.Warnf("Failed to assign therapies: %+v", err)
			return nil, err
		}
	}

	user.Person = *person
	user.Role = *role
	therapist.User = *user
	therapist.Therapies = therapies
	response := converter.TherapistToResponse(therapist)

	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionTherapistCreate, "therapist", therapist.PublicID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

// UpdateTherapist writes person, account, therapist and offered therapies in
// that order. The first failing step aborts the rest.
func (u *therapistUsecase) UpdateTherapist(ctx context.Context, publicID uuid.UUID, req *dto.UpdateTherapistRequest) (*dto.TherapistResponse, error) {
	db := u.db.WithContext(ctx)

	therapist, err := u.therapistRepo.FindByPublicID(db, publicID)
	if err != nil {
		u.log.Warnf("Failed to find therapist: %+v", err)
		return nil, err
	}
	if therapist == nil {
		return nil, ErrTherapistNotFound
	}

	birthdate, err := converter.ParseOptionalDate(req.Birthdate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	onboardDate, err := converter.ParseDate(req.OnboardDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	therapies, err := u.resolveTherapies(db, req.TherapyIDs)
	if err != nil {
		return nil, err
	}

	oldValue := converter.TherapistToResponse(therapist)
	wasActive := therapist.User.IsActive()

	person := &therapist.User.Person
	person.Name = strings.TrimSpace(req.Name)
	person.Lastname = strings.TrimSpace(req.Lastname)
	person.Birthdate = birthdate
	if err := u.personRepo.Update(db, person); err != nil {
		u.log.Warnf("Failed to update person: %+v", err)
		return nil, fmt.Errorf("update person: %w", err)
	}

	user := &therapist.User
	user.Email = strings.TrimSpace(req.Email)
	user.Username = strings.TrimSpace(req.Username)
	user.Status = entity.AccountStatus(req.Status)
	if err := u.userRepo.Update(db, user); err != nil {
		if mapped := accountWriteError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to update account: %+v", err)
		return nil, fmt.Errorf("update account: %w", err)
	}

	therapist.Resume = req.Resume
	therapist.OnboardDate = onboardDate
	if err := u.therapistRepo.Update(db, therapist); err != nil {
		u.log.Warnf("Failed to update therapist: %+v", err)
		return nil, fmt.Errorf("update therapist: %w", err)
	}

	if err := u.therapistRepo.ReplaceTherapies(db, therapist, therapies); err != nil {
		u.log.Warnf("Failed to replace therapies: %+v", err)
		return nil, fmt.Errorf("update therapies: %w", err)
	}
	therapist.Therapies = therapies

	// a deactivated account loses its live sessions
	if wasActive && !user.IsActive() {
		if err := u.tokenStore.RevokeAll(ctx, user.ID); err != nil {
			u.log.Warnf("Failed to revoke tokens of deactivated therapist: %+v", err)
		}
	}

	newValue := converter.TherapistToResponse(therapist)
	if err := u.auditService.LogUpdate(ctx, nil, middleware.ActorFromContext(ctx), entity.AuditActionTherapistUpdate, "therapist", publicID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}
