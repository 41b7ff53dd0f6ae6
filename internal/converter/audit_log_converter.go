package converter

import (
	"strings"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/internal/domain/entity"
)

// auditSubject names the record kind an entry is about. Entries written by the
// audit service carry it in metadata; otherwise it is the action prefix.
func auditSubject(log *entity.AuditLog) string {
	if subject, ok := log.Metadata["entity"].(string); ok && subject != "" {
		return subject
	}
	subject, _, _ := strings.Cut(log.Action, ".")
	return subject
}

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	entityID, _ := log.Metadata["entity_id"].(string)

	return &dto.AuditLogResponse{
		ID:        log.ID,
		User:      UserToResponse(log.User),
		Action:    log.Action,
		Subject:   auditSubject(log),
		EntityID:  entityID,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}
