package handler

import (
	"encoding/json"
	"net/http"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/usecase"
	"therapy-clinic-api/pkg/response"
	"therapy-clinic-api/pkg/validator"
)

type TherapyHandler struct {
	therapyUsecase usecase.TherapyUsecase
	validator      *validator.CustomValidator
}

func NewTherapyHandler(therapyUsecase usecase.TherapyUsecase, validator *validator.CustomValidator) *TherapyHandler {
	return &TherapyHandler{
		therapyUsecase: therapyUsecase,
		validator:      validator,
	}
}

// GetAllTherapies lists the catalog ordered by name
// @Summary List therapies
// @Tags Therapies
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Name or code"
// @Success 200 {object} response.Response
// @Router /therapies [get]
func (h *TherapyHandler) GetAllTherapies(w http.ResponseWriter, r *http.Request) {
	query := listQueryFromRequest(r)

	therapies, total, err := h.therapyUsecase.GetAllTherapies(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to get therapies")
		return
	}

	writeList(w, "Therapies retrieved successfully", therapies, query, total)
}

func (h *TherapyHandler) GetActiveTherapies(w http.ResponseWriter, r *http.Request) {
	therapies, err := h.therapyUsecase.GetActiveTherapies(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get therapies")
		return
	}

	response.Success(w, http.StatusOK, "Therapies retrieved successfully", therapies)
}

func (h *TherapyHandler) GetTherapy(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid therapy ID", nil)
		return
	}

	therapy, err := h.therapyUsecase.GetTherapy(r.Context(), id)
	if err != nil {
		if err == usecase.ErrTherapyNotFound {
			response.NotFound(w, "Therapy not found")
			return
		}
		response.InternalServerError(w, "Failed to get therapy")
		return
	}

	response.Success(w, http.StatusOK, "Therapy retrieved successfully", therapy)
}

func (h *TherapyHandler) CreateTherapy(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTherapyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	therapy, err := h.therapyUsecase.CreateTherapy(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTherapyCodeExists:
			response.Conflict(w, "Therapy code already exists")
		case usecase.ErrInvalidPrice:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create therapy")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Therapy created successfully", therapy)
}

func (h *TherapyHandler) UpdateTherapy(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid therapy ID", nil)
		return
	}

	var req dto.UpdateTherapyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	therapy, err := h.therapyUsecase.UpdateTherapy(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTherapyNotFound:
			response.NotFound(w, "Therapy not found")
		case usecase.ErrTherapyCodeExists:
			response.Conflict(w, "Therapy code already exists")
		case usecase.ErrInvalidPrice:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update therapy")
		}
		return
	}

	response.Success(w, http.StatusOK, "Therapy updated successfully", therapy)
}

// DeleteTherapy deactivates a therapy
// @Summary Deactivate therapy
// @Description Therapies are never removed; they leave the active catalog
// @Tags Therapies
// @Security BearerAuth
// @Produce json
// @Param id path int true "Therapy ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /therapies/{id} [delete]
func (h *TherapyHandler) DeleteTherapy(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid therapy ID", nil)
		return
	}

	if err := h.therapyUsecase.DeactivateTherapy(r.Context(), id); err != nil {
		if err == usecase.ErrTherapyNotFound {
			response.NotFound(w, "Therapy not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate therapy")
		return
	}

	response.Success(w, http.StatusOK, "Therapy deactivated successfully", nil)
}
