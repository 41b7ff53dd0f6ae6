package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/usecase"
	"therapy-clinic-api/pkg/response"
	"therapy-clinic-api/pkg/validator"
)

type TherapistHandler struct {
	therapistUsecase usecase.TherapistUsecase
	validator        *validator.CustomValidator
}

func NewTherapistHandler(therapistUsecase usecase.TherapistUsecase, validator *validator.CustomValidator) *TherapistHandler {
	return &TherapistHandler{
		therapistUsecase: therapistUsecase,
		validator:        validator,
	}
}

func (h *TherapistHandler) GetAllTherapists(w http.ResponseWriter, r *http.Request) {
	query := listQueryFromRequest(r)

	therapists, total, err := h.therapistUsecase.GetAllTherapists(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to get therapists")
		return
	}

	writeList(w, "Therapists retrieved successfully", therapists, query, total)
}

// SearchTherapists is the calendar typeahead, optionally narrowed to one therapy
// @Summary Search therapists
// @Tags Therapists
// @Security BearerAuth
// @Produce json
// @Param q query string true "At least 3 characters"
// @Param therapy_id query int false "Only therapists offering this therapy"
// @Success 200 {object} response.Response
// @Router /therapists/search [get]
func (h *TherapistHandler) SearchTherapists(w http.ResponseWriter, r *http.Request) {
	var therapyID *int64
	if raw := r.URL.Query().Get("therapy_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid therapy ID", nil)
			return
		}
		therapyID = &id
	}

	therapists, err := h.therapistUsecase.SearchTherapists(r.Context(), r.URL.Query().Get("q"), therapyID)
	if err != nil {
		response.InternalServerError(w, "Failed to search therapists")
		return
	}

	response.Success(w, http.StatusOK, "Therapists retrieved successfully", therapists)
}

func (h *TherapistHandler) GetTherapist(w http.ResponseWriter, r *http.Request) {
	publicID, err := pathUUID(r, "publicId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid therapist ID", nil)
		return
	}

	therapist, err := h.therapistUsecase.GetTherapist(r.Context(), publicID)
	if err != nil {
		if err == usecase.ErrTherapistNotFound {
			response.NotFound(w, "Therapist not found")
			return
		}
		response.InternalServerError(w, "Failed to get therapist")
		return
	}

	response.Success(w, http.StatusOK, "Therapist retrieved successfully", therapist)
}

// CreateTherapist handles therapist creation
// @Summary Create therapist
// @Description Creates the person, a therapist account and the therapist profile
// @Tags Therapists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTherapistRequest true "Create Therapist Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /therapists [post]
func (h *TherapistHandler) CreateTherapist(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTherapistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	therapist, err := h.therapistUsecase.CreateTherapist(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrUsernameAlreadyExists:
			response.Conflict(w, "Username already exists")
		case usecase.ErrTherapyNotFound, usecase.ErrRoleNotFound, usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create therapist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Therapist created successfully", therapist)
}

func (h *TherapistHandler) UpdateTherapist(w http.ResponseWriter, r *http.Request) {
	publicID, err := pathUUID(r, "publicId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid therapist ID", nil)
		return
	}

	var req dto.UpdateTherapistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	therapist, err := h.therapistUsecase.UpdateTherapist(r.Context(), publicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTherapistNotFound:
			response.NotFound(w, "Therapist not found")
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrUsernameAlreadyExists:
			response.Conflict(w, "Username already exists")
		case usecase.ErrTherapyNotFound, usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update therapist: "+err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Therapist updated successfully", therapist)
}
