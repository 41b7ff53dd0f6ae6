package handler

import (
	"context"
	"errors"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/usecase"

	"github.com/google/uuid"
)

var errNotImplemented = errors.New("not implemented in mock")

var _ usecase.ClientUsecase = (*MockClientUsecase)(nil)

type MockClientUsecase struct {
	GetAllClientsFunc       func(ctx context.Context, query *dto.ListQuery) ([]dto.ClientResponse, int64, error)
	SearchClientsFunc       func(ctx context.Context, query string) ([]dto.ClientResponse, error)
	GetClientDetailsFunc    func(ctx context.Context, publicID uuid.UUID) (*dto.ClientDetailsResponse, error)
	CreateClientFunc        func(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	UpdateClientDetailsFunc func(ctx context.Context, publicID uuid.UUID, req *dto.UpdateClientDetailsRequest) (*dto.ClientDetailsResponse, error)
}

func (m *MockClientUsecase) GetAllClients(ctx context.Context, query *dto.ListQuery) ([]dto.ClientResponse, int64, error) {
	if m.GetAllClientsFunc != nil {
		return m.GetAllClientsFunc(ctx, query)
	}
	return nil, 0, errNotImplemented
}

func (m *MockClientUsecase) SearchClients(ctx context.Context, query string) ([]dto.ClientResponse, error) {
	if m.SearchClientsFunc != nil {
		return m.SearchClientsFunc(ctx, query)
	}
	return nil, errNotImplemented
}

func (m *MockClientUsecase) GetClientDetails(ctx context.Context, publicID uuid.UUID) (*dto.ClientDetailsResponse, error) {
	if m.GetClientDetailsFunc != nil {
		return m.GetClientDetailsFunc(ctx, publicID)
	}
	return nil, errNotImplemented
}

func (m *MockClientUsecase) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if m.CreateClientFunc != nil {
		return m.CreateClientFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *MockClientUsecase) UpdateClientDetails(ctx context.Context, publicID uuid.UUID, req *dto.UpdateClientDetailsRequest) (*dto.ClientDetailsResponse, error) {
	if m.UpdateClientDetailsFunc != nil {
		return m.UpdateClientDetailsFunc(ctx, publicID, req)
	}
	return nil, errNotImplemented
}

var _ usecase.AuthUsecase = (*MockAuthUsecase)(nil)

type MockAuthUsecase struct {
	LoginFunc          func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	LogoutFunc         func(ctx context.Context, userID int64, accessTokenID, refreshToken string) error
	RefreshTokenFunc   func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	VerifyTokenFunc    func(ctx context.Context, token string) (*dto.VerifyTokenResponse, error)
	GetCurrentUserFunc func(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

func (m *MockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *MockAuthUsecase) Logout(ctx context.Context, userID int64, accessTokenID, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID, accessTokenID, refreshToken)
	}
	return errNotImplemented
}

func (m *MockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *MockAuthUsecase) VerifyToken(ctx context.Context, token string) (*dto.VerifyTokenResponse, error) {
	if m.VerifyTokenFunc != nil {
		return m.VerifyTokenFunc(ctx, token)
	}
	return nil, errNotImplemented
}

func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	if m.GetCurrentUserFunc != nil {
		return m.GetCurrentUserFunc(ctx, userID)
	}
	return nil, errNotImplemented
}

var _ usecase.TherapyUsecase = (*MockTherapyUsecase)(nil)

type MockTherapyUsecase struct {
	DeactivateTherapyFunc func(ctx context.Context, id int64) error
	CreateTherapyFunc     func(ctx context.Context, req *dto.CreateTherapyRequest) (*dto.TherapyResponse, error)
}

func (m *MockTherapyUsecase) GetAllTherapies(ctx context.Context, query *dto.ListQuery) ([]dto.TherapyResponse, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *MockTherapyUsecase) GetActiveTherapies(ctx context.Context) ([]dto.TherapyResponse, error) {
	return nil, errNotImplemented
}

func (m *MockTherapyUsecase) GetTherapy(ctx context.Context, id int64) (*dto.TherapyResponse, error) {
	return nil, errNotImplemented
}

func (m *MockTherapyUsecase) CreateTherapy(ctx context.Context, req *dto.CreateTherapyRequest) (*dto.TherapyResponse, error) {
	if m.CreateTherapyFunc != nil {
		return m.CreateTherapyFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *MockTherapyUsecase) UpdateTherapy(ctx context.Context, id int64, req *dto.UpdateTherapyRequest) (*dto.TherapyResponse, error) {
	return nil, errNotImplemented
}

func (m *MockTherapyUsecase) DeactivateTherapy(ctx context.Context, id int64) error {
	if m.DeactivateTherapyFunc != nil {
		return m.DeactivateTherapyFunc(ctx, id)
	}
	return errNotImplemented
}

var _ usecase.AppointmentUsecase = (*MockAppointmentUsecase)(nil)

type MockAppointmentUsecase struct {
	GetAllAppointmentsFunc      func(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, int64, error)
	CreateAppointmentFunc       func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatusFunc func(ctx context.Context, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

func (m *MockAppointmentUsecase) GetAllAppointments(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, int64, error) {
	if m.GetAllAppointmentsFunc != nil {
		return m.GetAllAppointmentsFunc(ctx, query)
	}
	return nil, 0, errNotImplemented
}

func (m *MockAppointmentUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	return nil, errNotImplemented
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if m.CreateAppointmentFunc != nil {
		return m.CreateAppointmentFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *MockAppointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, errNotImplemented
}

func (m *MockAppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	if m.UpdateAppointmentStatusFunc != nil {
		return m.UpdateAppointmentStatusFunc(ctx, id, req)
	}
	return nil, errNotImplemented
}

var _ usecase.AuditLogUsecase = (*MockAuditLogUsecase)(nil)

type MockAuditLogUsecase struct {
	GetAllAuditLogsFunc func(ctx context.Context, query *dto.AuditLogListQuery) ([]dto.AuditLogResponse, int64, error)
	GetAuditLogFunc     func(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

func (m *MockAuditLogUsecase) GetAllAuditLogs(ctx context.Context, query *dto.AuditLogListQuery) ([]dto.AuditLogResponse, int64, error) {
	if m.GetAllAuditLogsFunc != nil {
		return m.GetAllAuditLogsFunc(ctx, query)
	}
	return nil, 0, errNotImplemented
}

func (m *MockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	if m.GetAuditLogFunc != nil {
		return m.GetAuditLogFunc(ctx, id)
	}
	return nil, errNotImplemented
}
