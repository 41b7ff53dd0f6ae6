package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"therapy-clinic-api/internal/domain/entity"
	"therapy-clinic-api/internal/domain/repository"
	"therapy-clinic-api/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newMockDB opens gorm over sqlmock. Repositories are mocked, so only
// transaction boundaries reach the driver.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

var errNotImplemented = errors.New("not implemented in mock")

// Person

var _ repository.PersonRepository = (*MockPersonRepository)(nil)

type MockPersonRepository struct {
	CreateFunc   func(db *gorm.DB, person *entity.Person) error
	FindByIDFunc func(db *gorm.DB, id int64) (*entity.Person, error)
	UpdateFunc   func(db *gorm.DB, person *entity.Person) error
	calls        *[]string
}

func (m *MockPersonRepository) Create(db *gorm.DB, person *entity.Person) error {
	record(m.calls, "person.create")
	if m.CreateFunc != nil {
		return m.CreateFunc(db, person)
	}
	person.ID = 1
	return nil
}

func (m *MockPersonRepository) FindByID(db *gorm.DB, id int64) (*entity.Person, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errNotImplemented
}

func (m *MockPersonRepository) Update(db *gorm.DB, person *entity.Person) error {
	record(m.calls, "person.update")
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, person)
	}
	return nil
}

// Client

var _ repository.ClientRepository = (*MockClientRepository)(nil)

type MockClientRepository struct {
	CreateFunc           func(db *gorm.DB, client *entity.Client) error
	FindAllFunc          func(db *gorm.DB, filter *entity.ListFilter) ([]entity.Client, int64, error)
	SearchFunc           func(db *gorm.DB, query string, limit int) ([]entity.Client, error)
	FindByPublicIDFunc   func(db *gorm.DB, publicID uuid.UUID) (*entity.Client, error)
	FindByIDFunc         func(db *gorm.DB, id int64) (*entity.Client, error)
	UpdateByPublicIDFunc func(db *gorm.DB, client *entity.Client) error
	SearchCalls          int
	calls                *[]string
}

func (m *MockClientRepository) Create(db *gorm.DB, client *entity.Client) error {
	record(m.calls, "client.create")
	if m.CreateFunc != nil {
		return m.CreateFunc(db, client)
	}
	client.ID = 1
	return nil
}

func (m *MockClientRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Client, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, filter)
	}
	return nil, 0, errNotImplemented
}

func (m *MockClientRepository) Search(db *gorm.DB, query string, limit int) ([]entity.Client, error) {
	m.SearchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(db, query, limit)
	}
	return nil, errNotImplemented
}

func (m *MockClientRepository) FindByPublicID(db *gorm.DB, publicID uuid.UUID) (*entity.Client, error) {
	if m.FindByPublicIDFunc != nil {
		return m.FindByPublicIDFunc(db, publicID)
	}
	return nil, errNotImplemented
}

func (m *MockClientRepository) FindByID(db *gorm.DB, id int64) (*entity.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errNotImplemented
}

func (m *MockClientRepository) UpdateByPublicID(db *gorm.DB, client *entity.Client) error {
	record(m.calls, "client.update")
	if m.UpdateByPublicIDFunc != nil {
		return m.UpdateByPublicIDFunc(db, client)
	}
	return nil
}

// Address

var _ repository.AddressRepository = (*MockAddressRepository)(nil)

type MockAddressRepository struct {
	FindByPersonIDFunc func(db *gorm.DB, personID int64) ([]entity.Address, error)
	CreateFunc         func(db *gorm.DB, address *entity.Address) error
	UpdateFunc         func(db *gorm.DB, address *entity.Address) (int64, error)
	DeleteFunc         func(db *gorm.DB, personID, id int64) (int64, error)
	calls              *[]string
	nextID             int64
}

func (m *MockAddressRepository) FindByPersonID(db *gorm.DB, personID int64) ([]entity.Address, error) {
	if m.FindByPersonIDFunc != nil {
		return m.FindByPersonIDFunc(db, personID)
	}
	return nil, nil
}

func (m *MockAddressRepository) Create(db *gorm.DB, address *entity.Address) error {
	record(m.calls, "address.insert")
	if m.CreateFunc != nil {
		return m.CreateFunc(db, address)
	}
	m.nextID++
	address.ID = 500 + m.nextID
	return nil
}

func (m *MockAddressRepository) Update(db *gorm.DB, address *entity.Address) (int64, error) {
	record(m.calls, "address.update")
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, address)
	}
	return 1, nil
}

func (m *MockAddressRepository) Delete(db *gorm.DB, personID, id int64) (int64, error) {
	record(m.calls, "address.delete")
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, personID, id)
	}
	return 1, nil
}

// AppUser

var _ repository.AppUserRepository = (*MockAppUserRepository)(nil)

type MockAppUserRepository struct {
	CreateFunc         func(db *gorm.DB, user *entity.AppUser) error
	FindByEmailFunc    func(db *gorm.DB, email string) (*entity.AppUser, error)
	FindByIDFunc       func(db *gorm.DB, id int64) (*entity.AppUser, error)
	FindByPersonIDFunc func(db *gorm.DB, personID int64) (*entity.AppUser, error)
	UpdateFunc         func(db *gorm.DB, user *entity.AppUser) error
	calls              *[]string
}

func (m *MockAppUserRepository) Create(db *gorm.DB, user *entity.AppUser) error {
	record(m.calls, "user.create")
	if m.CreateFunc != nil {
		return m.CreateFunc(db, user)
	}
	user.ID = 1
	return nil
}

func (m *MockAppUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.AppUser, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(db, email)
	}
	return nil, errNotImplemented
}

func (m *MockAppUserRepository) FindByID(db *gorm.DB, id int64) (*entity.AppUser, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errNotImplemented
}

func (m *MockAppUserRepository) FindByPersonID(db *gorm.DB, personID int64) (*entity.AppUser, error) {
	if m.FindByPersonIDFunc != nil {
		return m.FindByPersonIDFunc(db, personID)
	}
	return nil, nil
}

func (m *MockAppUserRepository) Update(db *gorm.DB, user *entity.AppUser) error {
	record(m.calls, "user.update")
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, user)
	}
	return nil
}

// Therapist

var _ repository.TherapistRepository = (*MockTherapistRepository)(nil)

type MockRoleRepository struct {
	FindByNameFunc func(db *gorm.DB, name string) (*entity.Role, error)
}

func (m *MockRoleRepository) FindByName(db *gorm.DB, name string) (*entity.Role, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(db, name)
	}
	switch name {
	case entity.RoleAdmin:
		return &entity.Role{ID: entity.RoleIDAdmin, RoleName: name}, nil
	case entity.RoleTherapist:
		return &entity.Role{ID: entity.RoleIDTherapist, RoleName: name}, nil
	case entity.RoleStaff:
		return &entity.Role{ID: entity.RoleIDStaff, RoleName: name}, nil
	}
	return nil, nil
}

func (m *MockRoleRepository) FindByID(db *gorm.DB, id int) (*entity.Role, error) {
	return nil, nil
}

type MockTherapistRepository struct {
	CreateFunc           func(db *gorm.DB, therapist *entity.Therapist) error
	FindAllFunc          func(db *gorm.DB, filter *entity.ListFilter) ([]entity.Therapist, int64, error)
	SearchFunc           func(db *gorm.DB, query string, therapyID *int64, limit int) ([]entity.Therapist, error)
	FindByPublicIDFunc   func(db *gorm.DB, publicID uuid.UUID) (*entity.Therapist, error)
	FindByIDFunc         func(db *gorm.DB, id int64) (*entity.Therapist, error)
	UpdateFunc           func(db *gorm.DB, therapist *entity.Therapist) error
	ReplaceTherapiesFunc func(db *gorm.DB, therapist *entity.Therapist, therapies []entity.Therapy) error
	calls                *[]string
}

func (m *MockTherapistRepository) Create(db *gorm.DB, therapist *entity.Therapist) error {
	record(m.calls, "therapist.create")
	if m.CreateFunc != nil {
		return m.CreateFunc(db, therapist)
	}
	therapist.ID = 1
	return nil
}

func (m *MockTherapistRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Therapist, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, filter)
	}
	return nil, 0, errNotImplemented
}

func (m *MockTherapistRepository) Search(db *gorm.DB, query string, therapyID *int64, limit int) ([]entity.Therapist, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(db, query, therapyID, limit)
	}
	return nil, errNotImplemented
}

func (m *MockTherapistRepository) FindByPublicID(db *gorm.DB, publicID uuid.UUID) (*entity.Therapist, error) {
	if m.FindByPublicIDFunc != nil {
		return m.FindByPublicIDFunc(db, publicID)
	}
	return nil, errNotImplemented
}

func (m *MockTherapistRepository) FindByID(db *gorm.DB, id int64) (*entity.Therapist, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errNotImplemented
}

func (m *MockTherapistRepository) Update(db *gorm.DB, therapist *entity.Therapist) error {
	record(m.calls, "therapist.update")
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, therapist)
	}
	return nil
}

func (m *MockTherapistRepository) ReplaceTherapies(db *gorm.DB, therapist *entity.Therapist, therapies []entity.Therapy) error {
	record(m.calls, "therapist.therapies")
	if m.ReplaceTherapiesFunc != nil {
		return m.ReplaceTherapiesFunc(db, therapist, therapies)
	}
	return nil
}

// Therapy

var _ repository.TherapyRepository = (*MockTherapyRepository)(nil)

type MockTherapyRepository struct {
	CreateFunc     func(db *gorm.DB, therapy *entity.Therapy) error
	FindAllFunc    func(db *gorm.DB, filter *entity.ListFilter) ([]entity.Therapy, int64, error)
	FindActiveFunc func(db *gorm.DB) ([]entity.Therapy, error)
	FindByIDFunc   func(db *gorm.DB, id int64) (*entity.Therapy, error)
	FindByIDsFunc  func(db *gorm.DB, ids []int64) ([]entity.Therapy, error)
	UpdateFunc     func(db *gorm.DB, therapy *entity.Therapy) error
	SetActiveFunc  func(db *gorm.DB, id int64, active bool) (int64, error)
}

func (m *MockTherapyRepository) Create(db *gorm.DB, therapy *entity.Therapy) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, therapy)
	}
	therapy.ID = 1
	return nil
}

func (m *MockTherapyRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Therapy, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, filter)
	}
	return nil, 0, errNotImplemented
}

func (m *MockTherapyRepository) FindActive(db *gorm.DB) ([]entity.Therapy, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(db)
	}
	return nil, errNotImplemented
}

func (m *MockTherapyRepository) FindByID(db *gorm.DB, id int64) (*entity.Therapy, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errNotImplemented
}

func (m *MockTherapyRepository) FindByIDs(db *gorm.DB, ids []int64) ([]entity.Therapy, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(db, ids)
	}
	therapies := make([]entity.Therapy, 0, len(ids))
	for _, id := range ids {
		therapies = append(therapies, entity.Therapy{ID: id})
	}
	return therapies, nil
}

func (m *MockTherapyRepository) Update(db *gorm.DB, therapy *entity.Therapy) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, therapy)
	}
	return nil
}

func (m *MockTherapyRepository) SetActive(db *gorm.DB, id int64, active bool) (int64, error) {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(db, id, active)
	}
	return 1, nil
}

// Appointment

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc       func(db *gorm.DB, appointment *entity.Appointment) error
	FindAllFunc      func(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	FindByIDFunc     func(db *gorm.DB, id int64) (*entity.Appointment, error)
	UpdateFunc       func(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatusFunc func(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error)
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, appointment)
	}
	appointment.ID = 1
	return nil
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, filter)
	}
	return nil, 0, errNotImplemented
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errNotImplemented
}

func (m *MockAppointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(db, id, status)
	}
	return 1, nil
}

// AuditLog

var _ repository.AuditLogRepository = (*MockAuditLogRepository)(nil)

type MockAuditLogRepository struct {
	FindAllFunc  func(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error)
	FindByIDFunc func(db *gorm.DB, id int64) (*entity.AuditLog, error)
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return nil
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, filter)
	}
	return nil, 0, errNotImplemented
}

func (m *MockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errNotImplemented
}

// AuditService

var _ service.AuditService = (*MockAuditService)(nil)

// MockAuditService keeps the actions it was asked to log.
type MockAuditService struct {
	Actions []string
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *int64, action string, entityName string, entityID string, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *int64, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *int64, action string, entityName string, entityID string, oldValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

// TokenStore

var _ service.TokenStore = (*MockTokenStore)(nil)

// MockTokenStore is an in-memory whitelist keyed like the redis store.
type MockTokenStore struct {
	Keys         map[string]bool
	SaveErr      error
	RevokedUsers []int64
}

func newMockTokenStore() *MockTokenStore {
	return &MockTokenStore{Keys: map[string]bool{}}
}

func (m *MockTokenStore) Save(ctx context.Context, userID int64, accessID, refreshID string, accessTTL, refreshTTL time.Duration) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Keys[service.AccessTokenKey(userID, accessID)] = true
	m.Keys[service.RefreshTokenKey(userID, refreshID)] = true
	return nil
}

func (m *MockTokenStore) IsAccessTokenValid(ctx context.Context, userID int64, tokenID string) (bool, error) {
	return m.Keys[service.AccessTokenKey(userID, tokenID)], nil
}

func (m *MockTokenStore) ConsumeRefreshToken(ctx context.Context, userID int64, tokenID string) (bool, error) {
	key := service.RefreshTokenKey(userID, tokenID)
	ok := m.Keys[key]
	delete(m.Keys, key)
	return ok, nil
}

func (m *MockTokenStore) Revoke(ctx context.Context, userID int64, accessID, refreshID string) error {
	delete(m.Keys, service.AccessTokenKey(userID, accessID))
	if refreshID != "" {
		delete(m.Keys, service.RefreshTokenKey(userID, refreshID))
	}
	return nil
}

func (m *MockTokenStore) RevokeAll(ctx context.Context, userID int64) error {
	m.RevokedUsers = append(m.RevokedUsers, userID)
	return nil
}

func record(calls *[]string, name string) {
	if calls != nil {
		*calls = append(*calls, name)
	}
}
