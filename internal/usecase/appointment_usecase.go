package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrInvalidDateRange    = errors.New("from date must not be after to date")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrTherapyInactive     = errors.New("therapy is not active")
)

type AppointmentUsecase interface {
	GetAllAppointments(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, int64, error)
	GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	clientRepo      repository.ClientRepository
	therapistRepo   repository.TherapistRepository
	therapyRepo     repository.TherapyRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	clientRepo repository.ClientRepository,
	therapistRepo repository.TherapistRepository,
	therapyRepo repository.TherapyRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		therapistRepo:   therapistRepo,
		therapyRepo:     therapyRepo,
		auditService:    auditService,
	}
}

// appointmentSlot is the parsed date and time range of a request.
type appointmentSlot struct {
	date      time.Time
	startTime string
	endTime   string
}

func parseSlot(date, start, end string) (*appointmentSlot, error) {
	d, err := converter.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	startAt, err := time.Parse(converter.ClockLayout, start)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	endAt, err := time.Parse(converter.ClockLayout, end)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !endAt.After(startAt) {
		return nil, ErrInvalidTimeRange
	}
	return &appointmentSlot{
		date:      d,
		startTime: startAt.Format(converter.ClockLayout),
		endTime:   endAt.Format(converter.ClockLayout),
	}, nil
}

// resolveParties loads the client, therapist and therapy an appointment points at.
func (u *appointmentUsecase) resolveParties(db *gorm.DB, clientID, therapistID uuid.UUID, therapyID int64) (*entity.Client, *entity.Therapist, *entity.Therapy, error) {
	client, err := u.clientRepo.FindByPublicID(db, clientID)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return nil, nil, nil, err
	}
	if client == nil {
		return nil, nil, nil, ErrClientNotFound
	}

	therapist, err := u.therapistRepo.FindByPublicID(db, therapistID)
	if err != nil {
		u.log.Warnf("Failed to find therapist: %+v", err)
		return nil, nil, nil, err
	}
	if therapist == nil {
		return nil, nil, nil, ErrTherapistNotFound
	}

	therapy, err := u.therapyRepo.FindByID(db, therapyID)
	if err != nil {
		u.log.Warnf("Failed to find therapy: %+v", err)
		return nil, nil, nil, err
	}
	if therapy == nil {
		return nil, nil, nil, ErrTherapyNotFound
	}

	return client, therapist, therapy, nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, int64, error) {
	db := u.db.WithContext(ctx)
	filter := &entity.AppointmentFilter{ListFilter: *query.ToFilter()}

	var err error
	if filter.From, err = converter.ParseOptionalDate(&query.From); err != nil {
		return nil, 0, ErrInvalidDateFormat
	}
	if filter.To, err = converter.ParseOptionalDate(&query.To); err != nil {
		return nil, 0, ErrInvalidDateFormat
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, 0, ErrInvalidDateRange
	}

	if query.Status != "" {
		status := entity.AppointmentStatus(query.Status)
		if !status.IsValid() {
			return nil, 0, ErrInvalidStatus
		}
		filter.Status = status
	}

	if therapistID := strings.TrimSpace(query.TherapistID); therapistID != "" {
		publicID, err := uuid.Parse(therapistID)
		if err != nil {
			return nil, 0, ErrTherapistNotFound
		}
		therapist, err := u.therapistRepo.FindByPublicID(db, publicID)
		if err != nil {
			u.log.Warnf("Failed to find therapist: %+v", err)
			return nil, 0, err
		}
		if therapist == nil {
			return nil, 0, ErrTherapistNotFound
		}
		filter.TherapistID = &therapist.ID
	}

	appointments, total, err := u.appointmentRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	slot, err := parseSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	status := entity.AppointmentStatusPending
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, therapist, therapy, err := u.resolveParties(tx, req.ClientID, req.TherapistID, req.TherapyID)
	if err != nil {
		return nil, err
	}
	if !therapy.Active() {
		return nil, ErrTherapyInactive
	}

	appointment := &entity.Appointment{
		ClientID:    client.ID,
		TherapistID: therapist.ID,
		TherapyID:   therapy.ID,
		Date:        slot.date,
		StartTime:   slot.startTime,
		EndTime:     slot.endTime,
		Room:        strings.TrimSpace(req.Room),
		Status:      status,
		Phone:       strings.TrimSpace(req.Phone),
		Notes:       req.Notes,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Client = *client
	appointment.Therapist = *therapist
	appointment.Therapy = *therapy
	response := converter.AppointmentToResponse(appointment)

	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionAppointmentCreate, "appointment", strconv.FormatInt(appointment.ID, 10), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	slot, err := parseSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	status := entity.AppointmentStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	client, therapist, therapy, err := u.resolveParties(tx, req.ClientID, req.TherapistID, req.TherapyID)
	if err != nil {
		return nil, err
	}
	// an inactive therapy may stay on an existing appointment but not be newly chosen
	if therapy.ID != appointment.TherapyID && !therapy.Active() {
		return nil, ErrTherapyInactive
	}

	oldValue := converter.AppointmentToResponse(appointment)

	appointment.ClientID = client.ID
	appointment.TherapistID = therapist.ID
	appointment.TherapyID = therapy.ID
	appointment.Date = slot.date
	appointment.StartTime = slot.startTime
	appointment.EndTime = slot.endTime
	appointment.Room = strings.TrimSpace(req.Room)
	appointment.Status = status
	appointment.Phone = strings.TrimSpace(req.Phone)
	appointment.Notes = req.Notes

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	appointment.Client = *client
	appointment.Therapist = *therapist
	appointment.Therapy = *therapy
	newValue := converter.AppointmentToResponse(appointment)

	if err := u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionAppointmentUpdate, "appointment", strconv.FormatInt(id, 10), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// UpdateAppointmentStatus moves an appointment to any allowed status.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldStatus := appointment.Status
	if _, err := u.appointmentRepo.UpdateStatus(tx, id, status); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	appointment.Status = status

	metadata := map[string]interface{}{"status": status}
	if err := u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx), entity.AuditActionAppointmentStatus, "appointment", strconv.FormatInt(id, 10), map[string]interface{}{"status": oldStatus}, metadata); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}
