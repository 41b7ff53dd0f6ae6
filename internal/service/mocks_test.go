package service

import (
	"errors"
	"sync/atomic"

	"therapy-clinic-api/internal/domain/entity"
	"therapy-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

var _ repository.AddressRepository = (*MockAddressRepository)(nil)

// MockAddressRepository records every call in order.
type MockAddressRepository struct {
	FindByPersonIDFunc func(db *gorm.DB, personID int64) ([]entity.Address, error)
	CreateFunc         func(db *gorm.DB, address *entity.Address) error
	UpdateFunc         func(db *gorm.DB, address *entity.Address) (int64, error)
	DeleteFunc         func(db *gorm.DB, personID, id int64) (int64, error)

	Calls     []string
	nextID    int64
	CallCount int32
}

func (m *MockAddressRepository) FindByPersonID(db *gorm.DB, personID int64) ([]entity.Address, error) {
	atomic.AddInt32(&m.CallCount, 1)
	if m.FindByPersonIDFunc != nil {
		return m.FindByPersonIDFunc(db, personID)
	}
	return nil, errors.New("FindByPersonIDFunc not implemented in mock")
}

func (m *MockAddressRepository) Create(db *gorm.DB, address *entity.Address) error {
	atomic.AddInt32(&m.CallCount, 1)
	m.Calls = append(m.Calls, "insert")
	if m.CreateFunc != nil {
		return m.CreateFunc(db, address)
	}
	m.nextID++
	address.ID = 1000 + m.nextID
	return nil
}

func (m *MockAddressRepository) Update(db *gorm.DB, address *entity.Address) (int64, error) {
	atomic.AddInt32(&m.CallCount, 1)
	m.Calls = append(m.Calls, "update")
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, address)
	}
	return 1, nil
}

func (m *MockAddressRepository) Delete(db *gorm.DB, personID, id int64) (int64, error) {
	atomic.AddInt32(&m.CallCount, 1)
	m.Calls = append(m.Calls, "delete")
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, personID, id)
	}
	return 1, nil
}

var _ repository.AuditLogRepository = (*MockAuditLogRepository)(nil)

type MockAuditLogRepository struct {
	CreateFunc func(db *gorm.DB, log *entity.AuditLog) error
	Created    []*entity.AuditLog
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	m.Created = append(m.Created, log)
	if m.CreateFunc != nil {
		return m.CreateFunc(db, log)
	}
	return nil
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	return nil, 0, errors.New("FindAll not implemented in mock")
}

func (m *MockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, errors.New("FindByID not implemented in mock")
}
