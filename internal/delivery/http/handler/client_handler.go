package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/service"
	"therapy-clinic-api/internal/usecase"
	"therapy-clinic-api/pkg/response"
	"therapy-clinic-api/pkg/validator"
)

type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
	validator     *validator.CustomValidator
}

func NewClientHandler(clientUsecase usecase.ClientUsecase, validator *validator.CustomValidator) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		validator:     validator,
	}
}

// GetAllClients lists clients newest first
// @Summary List clients
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Name or lastname"
// @Success 200 {object} response.Response
// @Router /clients [get]
func (h *ClientHandler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	query := listQueryFromRequest(r)

	clients, total, err := h.clientUsecase.GetAllClients(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to get clients")
		return
	}

	writeList(w, "Clients retrieved successfully", clients, query, total)
}

// SearchClients is the calendar typeahead
// @Summary Search clients
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param q query string true "At least 3 characters"
// @Success 200 {object} response.Response
// @Router /clients/search [get]
func (h *ClientHandler) SearchClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientUsecase.SearchClients(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalServerError(w, "Failed to search clients")
		return
	}

	response.Success(w, http.StatusOK, "Clients retrieved successfully", clients)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	publicID, err := pathUUID(r, "publicId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	client, err := h.clientUsecase.GetClientDetails(r.Context(), publicID)
	if err != nil {
		if err == usecase.ErrClientNotFound {
			response.NotFound(w, "Client not found")
			return
		}
		response.InternalServerError(w, "Failed to get client")
		return
	}

	response.Success(w, http.StatusOK, "Client retrieved successfully", client)
}

// CreateClient handles client creation
// @Summary Create client
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /clients [post]
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.CreateClient(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create client")
		return
	}

	response.Success(w, http.StatusCreated, "Client created successfully", client)
}

// UpdateClient saves the whole edited client aggregate
// @Summary Update client details
// @Description Updates person, client, addresses and account. Addresses missing from the request are deleted.
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param publicId path string true "Client public ID"
// @Param request body dto.UpdateClientDetailsRequest true "Update Client Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /clients/{publicId} [put]
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	publicID, err := pathUUID(r, "publicId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	var req dto.UpdateClientDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.UpdateClientDetails(r.Context(), publicID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrClientNotFound):
			response.NotFound(w, "Client not found")
		case errors.Is(err, usecase.ErrAccountNotFound):
			response.NotFound(w, "Client has no account")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, err.Error())
		case errors.Is(err, service.ErrAddressNotOwned), errors.Is(err, service.ErrDuplicateAddress):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrEmailAlreadyExists), errors.Is(err, usecase.ErrUsernameAlreadyExists):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update client: "+err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Client updated successfully", client)
}
