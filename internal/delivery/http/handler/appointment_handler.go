package handler

import (
	"encoding/json"
	"net/http"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/usecase"
	"therapy-clinic-api/pkg/response"
	"therapy-clinic-api/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// appointmentError maps usecase errors shared by create and update.
func appointmentError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrClientNotFound, usecase.ErrTherapistNotFound, usecase.ErrTherapyNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeFormat, usecase.ErrInvalidTimeRange,
		usecase.ErrInvalidDateRange, usecase.ErrInvalidStatus, usecase.ErrTherapyInactive:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

// GetAllAppointments lists appointments for calendar views
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Client name or lastname"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param therapist_id query string false "Therapist public ID"
// @Param status query string false "pending, confirmed, completed or cancelled"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.AppointmentListQuery{
		ListQuery:   *listQueryFromRequest(r),
		From:        q.Get("from"),
		To:          q.Get("to"),
		TherapistID: q.Get("therapist_id"),
		Status:      q.Get("status"),
	}

	appointments, total, err := h.appointmentUsecase.GetAllAppointments(r.Context(), query)
	if err != nil {
		appointmentError(w, err, "Failed to get appointments")
		return
	}

	writeList(w, "Appointments retrieved successfully", appointments, &query.ListQuery, total)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		appointmentError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// CreateAppointment books a client with a therapist
// @Summary Create appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		appointmentError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		appointmentError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// UpdateAppointmentStatus sets any allowed status
// @Summary Update appointment status
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointmentStatus(r.Context(), id, &req)
	if err != nil {
		appointmentError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}
