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
	"gorm.io/gorm"
)

var (
	ErrClientNotFound        = errors.New("client not found")
	ErrAccountNotFound       = errors.New("client has no account")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

type ClientUsecase interface {
	GetAllClients(ctx context.Context, query *dto.ListQuery) ([]dto.ClientResponse, int64, error)
	SearchClients(ctx context.Context, query string) ([]dto.ClientResponse, error)
	GetClientDetails(ctx context.Context, publicID uuid.UUID) (*dto.ClientDetailsResponse, error)
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	UpdateClientDetails(ctx context.Context, publicID uuid.UUID, req *dto.UpdateClientDetailsRequest) (*dto.ClientDetailsResponse, error)
}

type clientUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	personRepo        repository.PersonRepository
	clientRepo        repository.ClientRepository
	addressRepo       repository.AddressRepository
	userRepo          repository.AppUserRepository
	addressReconciler *service.AddressReconciler
	auditService      service.AuditService
}

func NewClientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	personRepo repository.PersonRepository,
	clientRepo repository.ClientRepository,
	addressRepo repository.AddressRepository,
	userRepo repository.AppUserRepository,
	addressReconciler *service.AddressReconciler,
	auditService service.AuditService,
) ClientUsecase {
	return &clientUsecase{
		db:                db,
		log:               log,
		personRepo:        personRepo,
		clientRepo:        clientRepo,
		addressRepo:       addressRepo,
		userRepo:          userRepo,
		addressReconciler: addressReconciler,
		auditService:      auditService,
	}
}

func (u *clientUsecase) GetAllClients(ctx context.Context, query *dto.ListQuery) ([]dto.ClientResponse, int64, error) {
	clients, total, err := u.clientRepo.FindAll(u.db.WithContext(ctx), query.ToFilter())
	if err != nil {
		u.log.Warnf("Failed to find clients: %+v", err)
		return nil, 0, err
	}

	return converter.ClientsToResponses(clients), total, nil
}

// SearchClients is the typeahead lookup: short queries return nothing
// without touching the database.
func (u *clientUsecase) SearchClients(ctx context.Context, query string) ([]dto.ClientResponse, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < entity.MinSearchLength {
		return []dto.ClientResponse{}, nil
	}

	clients, err := u.clientRepo.Search(u.db.WithContext(ctx), query, entity.SearchResultLimit)
	if err != nil {
		u.log.Warnf("Failed to search clients: %+v", err)
		return nil, err
	}

	return converter.ClientsToResponses(clients), nil
}

// loadDetails assembles the client aggregate: client, person, addresses and
// the optional account.
func (u *clientUsecase) loadDetails(db *gorm.DB, publicID uuid.UUID) (*entity.ClientDetails, error) {
	client, err := u.clientRepo.FindByPublicID(db, publicID)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	addresses, err := u.addressRepo.FindByPersonID(db, client.PersonID)
	if err != nil {
		u.log.Warnf("Failed to find client addresses: %+v", err)
		return nil, err
	}

	account, err := u.userRepo.FindByPersonID(db, client.PersonID)
	if err != nil {
		u.log.Warnf("Failed to find client account: %+v", err)
		return nil, err
	}

	return &entity.ClientDetails{
		Client:    *client,
		Addresses: addresses,
		Account:   account,
	}, nil
}

func (u *clientUsecase) GetClientDetails(ctx context.Context, publicID uuid.UUID) (*dto.ClientDetailsResponse, error) {
	details, err := u.loadDetails(u.db.WithContext(ctx), publicID)
	if err != nil {
		return nil, err
	}

	return converter.ClientDetailsToResponse(details), nil
}

func (u *clientUsecase) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	person := &entity.Person{
		Name:     strings.TrimSpace(req.Name),
		Lastname: strings.TrimSpace(req.Lastname),
	}
	if err := u.personRepo.Create(tx, person); err != nil {
		u.log.Warnf("Failed to create person: %+v", err)
		return nil, err
	}

	client := &entity.Client{
		PublicID:    uuid.New(),
		PersonID:    person.ID,
		OnboardDate: today(),
		Person:      *person,
	}
	if err := u.clientRepo.Create(tx, client); err != nil {
		u.log.Warnf("Failed to create client: %+v", err)
		return nil, err
	}

	response := converter.ClientToResponse(client)

	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionClientCreate, "client", client.PublicID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

// UpdateClientDetails reconciles the stored aggregate with the edited one:
// person, then client, then address deletes, then address updates and
// inserts in edited order, then the account. Steps are not wrapped in a
// transaction; the first failing step aborts the rest.
func (u *clientUsecase) UpdateClientDetails(ctx context.Context, publicID uuid.UUID, req *dto.UpdateClientDetailsRequest) (*dto.ClientDetailsResponse, error) {
	db := u.db.WithContext(ctx)

	current, err := u.loadDetails(db, publicID)
	if err != nil {
		return nil, err
	}

	birthdate, err := converter.ParseOptionalDate(req.Birthdate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	onboardDate, err := converter.ParseDate(req.OnboardDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	plan, err := service.PlanAddressChanges(current.Addresses, converter.AddressRequestsToEntities(req.Addresses))
	if err != nil {
		return nil, err
	}

	if req.Account != nil && current.Account == nil {
		return nil, ErrAccountNotFound
	}

	oldValue := converter.ClientDetailsToResponse(current)
	updated := *current

	// 1. person
	person := current.Client.Person
	person.Name = strings.TrimSpace(req.Name)
	person.Lastname = strings.TrimSpace(req.Lastname)
	person.Birthdate = birthdate
	if err := u.personRepo.Update(db, &person); err != nil {
		u.log.Warnf("Failed to update person: %+v", err)
		return nil, fmt.Errorf("update person: %w", err)
	}
	updated.Client.Person = person

	// 2. client
	updated.Client.OnboardDate = onboardDate
	if err := u.clientRepo.UpdateByPublicID(db, &updated.Client); err != nil {
		u.log.Warnf("Failed to update client: %+v", err)
		return nil, fmt.Errorf("update client: %w", err)
	}

	// 3, 4. addresses
	addresses, err := u.addressReconciler.Apply(db, current.Client.PersonID, plan)
	if err != nil {
		u.log.Warnf("Failed to reconcile addresses: %+v", err)
		return nil, err
	}
	updated.Addresses = addresses

	// 5. account
	if req.Account != nil {
		account := *current.Account
		account.Email = strings.TrimSpace(req.Account.Email)
		account.Username = strings.TrimSpace(req.Account.Username)
		account.Status = entity.AccountStatus(req.Account.Status)
		if err := u.userRepo.Update(db, &account); err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrEmailAlreadyExists
			}
			if isDuplicateKeyError(err, "username") {
				return nil, ErrUsernameAlreadyExists
			}
			u.log.Warnf("Failed to update account: %+v", err)
			return nil, fmt.Errorf("update account: %w", err)
		}
		updated.Account = &account
	}

	newValue := converter.ClientDetailsToResponse(&updated)
	if err := u.auditService.LogUpdate(ctx, nil, middleware.ActorFromContext(ctx), entity.AuditActionClientUpdate, "client", publicID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}
