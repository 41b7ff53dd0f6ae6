package handler

import (
	"net/http"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/usecase"
	"therapy-clinic-api/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetAllAuditLogs godoc
// @Summary List audit trail entries, newest first
// @Tags admin
// @Param action query string false "Action prefix, e.g. client."
// @Param user_id query int false "Acting account id"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD, inclusive"
// @Success 200 {object} response.Response
// @Router /api/v1/admin/audit-logs [get]
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.AuditLogListQuery{
		ListQuery: *listQueryFromRequest(r),
		Action:    q.Get("action"),
		UserID:    q.Get("user_id"),
		From:      q.Get("from"),
		To:        q.Get("to"),
	}

	auditLogs, total, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrInvalidUserID:
			response.BadRequest(w, "Invalid user_id")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Dates must be YYYY-MM-DD")
		case usecase.ErrInvalidDateRange:
			response.BadRequest(w, "from must not be after to")
		default:
			response.InternalServerError(w, "Failed to get audit logs")
		}
		return
	}

	writeList(w, "Audit logs retrieved successfully", auditLogs, &query.ListQuery, total)
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		if err == usecase.ErrAuditLogNotFound {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}
