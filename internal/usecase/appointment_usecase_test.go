package usecase

import (
	"context"
	"testing"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type appointmentFixture struct {
	usecase         AppointmentUsecase
	appointmentRepo *MockAppointmentRepository
	therapyRepo     *MockTherapyRepository
	clientID        uuid.UUID
	therapistID     uuid.UUID
}

func newAppointmentFixture(t *testing.T, db *gorm.DB) *appointmentFixture {
	t.Helper()

	f := &appointmentFixture{
		appointmentRepo: &MockAppointmentRepository{},
		clientID:        uuid.New(),
		therapistID:     uuid.New(),
	}
	active := true
	f.therapyRepo = &MockTherapyRepository{
		FindByIDFunc: func(db *gorm.DB, id int64) (*entity.Therapy, error) {
			if id != 2 {
				return nil, nil
			}
			return &entity.Therapy{ID: 2, Name: "Massage", Code: "MSG", IsActive: &active}, nil
		},
	}
	clientRepo := &MockClientRepository{
		FindByPublicIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Client, error) {
			if id != f.clientID {
				return nil, nil
			}
			return &entity.Client{ID: 3, PublicID: id, Person: entity.Person{Name: "Ana"}}, nil
		},
	}
	therapistRepo := &MockTherapistRepository{
		FindByPublicIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Therapist, error) {
			if id != f.therapistID {
				return nil, nil
			}
			return &entity.Therapist{ID: 4, PublicID: id, User: entity.AppUser{Person: entity.Person{Name: "Tess"}}}, nil
		},
	}
	f.usecase = NewAppointmentUsecase(db, quietLogger(), f.appointmentRepo, clientRepo, therapistRepo, f.therapyRepo, &MockAuditService{})
	return f
}

func (f *appointmentFixture) request() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		ClientID:    f.clientID,
		TherapistID: f.therapistID,
		TherapyID:   2,
		Date:        "2024-05-10",
		StartTime:   "09:00",
		EndTime:     "10:30",
		Room:        " A1 ",
	}
}

func TestCreateAppointment_DefaultsToPending(t *testing.T) {
	db, mock := newMockDB(t)
	f := newAppointmentFixture(t, db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var created *entity.Appointment
	f.appointmentRepo.CreateFunc = func(db *gorm.DB, appointment *entity.Appointment) error {
		created = appointment
		appointment.ID = 11
		return nil
	}

	resp, err := f.usecase.CreateAppointment(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, entity.AppointmentStatusPending, created.Status)
	assert.Equal(t, int64(3), created.ClientID)
	assert.Equal(t, int64(4), created.TherapistID)
	assert.Equal(t, "A1", created.Room)
	assert.Equal(t, "2024-05-10", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "10:30", resp.EndTime)
	assert.Equal(t, "Ana", resp.Client.Name)
	assert.Equal(t, "Tess", resp.Therapist.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *appointmentFixture, req *dto.CreateAppointmentRequest)
		wantErr error
	}{
		{"end before start", func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.EndTime = "08:00" }, ErrInvalidTimeRange},
		{"end equals start", func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.EndTime = "09:00" }, ErrInvalidTimeRange},
		{"bad clock", func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.StartTime = "9am" }, ErrInvalidTimeFormat},
		{"bad date", func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.Date = "10/05/2024" }, ErrInvalidDateFormat},
		{"bad status", func(f *appointmentFixture, req *dto.CreateAppointmentRequest) { req.Status = "archived" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			f := newAppointmentFixture(t, db)
			req := f.request()
			tt.mutate(f, req)

			_, err := f.usecase.CreateAppointment(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateAppointment_MissingParties(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.CreateAppointmentRequest)
		wantErr error
	}{
		{"client", func(req *dto.CreateAppointmentRequest) { req.ClientID = uuid.New() }, ErrClientNotFound},
		{"therapist", func(req *dto.CreateAppointmentRequest) { req.TherapistID = uuid.New() }, ErrTherapistNotFound},
		{"therapy", func(req *dto.CreateAppointmentRequest) { req.TherapyID = 99 }, ErrTherapyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			f := newAppointmentFixture(t, db)
			mock.ExpectBegin()
			mock.ExpectRollback()

			req := f.request()
			tt.mutate(req)

			_, err := f.usecase.CreateAppointment(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateAppointmentStatus_AnyTransitionAllowed(t *testing.T) {
	db, mock := newMockDB(t)
	f := newAppointmentFixture(t, db)

	f.appointmentRepo.FindByIDFunc = func(db *gorm.DB, id int64) (*entity.Appointment, error) {
		return &entity.Appointment{ID: id, Status: entity.AppointmentStatusCancelled}, nil
	}
	var got entity.AppointmentStatus
	f.appointmentRepo.UpdateStatusFunc = func(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error) {
		got = status
		return 1, nil
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := f.usecase.UpdateAppointmentStatus(context.Background(), 11, &dto.UpdateAppointmentStatusRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusPending, got)
	assert.Equal(t, "pending", resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	f := newAppointmentFixture(t, db)
	f.appointmentRepo.FindByIDFunc = func(db *gorm.DB, id int64) (*entity.Appointment, error) {
		return nil, nil
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := f.usecase.UpdateAppointmentStatus(context.Background(), 11, &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllAppointments_BuildsFilter(t *testing.T) {
	db, _ := newMockDB(t)
	f := newAppointmentFixture(t, db)

	f.appointmentRepo.FindAllFunc = func(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
		require.NotNil(t, filter.From)
		require.NotNil(t, filter.To)
		require.NotNil(t, filter.TherapistID)
		assert.Equal(t, "2024-05-01", filter.From.Format("2006-01-02"))
		assert.Equal(t, "2024-05-31", filter.To.Format("2006-01-02"))
		assert.Equal(t, int64(4), *filter.TherapistID)
		assert.Equal(t, entity.AppointmentStatusConfirmed, filter.Status)
		assert.Equal(t, "ana", filter.Search)
		return []entity.Appointment{}, 0, nil
	}

	_, total, err := f.usecase.GetAllAppointments(context.Background(), &dto.AppointmentListQuery{
		ListQuery:   dto.ListQuery{Search: "ana"},
		From:        "2024-05-01",
		To:          "2024-05-31",
		TherapistID: f.therapistID.String(),
		Status:      "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestGetAllAppointments_RejectsBadFilters(t *testing.T) {
	db, _ := newMockDB(t)
	f := newAppointmentFixture(t, db)

	_, _, err := f.usecase.GetAllAppointments(context.Background(), &dto.AppointmentListQuery{From: "2024-06-01", To: "2024-05-01"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, _, err = f.usecase.GetAllAppointments(context.Background(), &dto.AppointmentListQuery{Status: "lost"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, _, err = f.usecase.GetAllAppointments(context.Background(), &dto.AppointmentListQuery{TherapistID: "not-a-uuid"})
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}
