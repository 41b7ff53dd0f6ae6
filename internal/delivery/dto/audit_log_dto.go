package dto

import (
	"time"

	"therapy-clinic-api/internal/domain/entity"
)

// AuditLogListQuery adds trail filters to ListQuery.
type AuditLogListQuery struct {
	ListQuery
	Action string // prefix, e.g. "client." or "user.login"
	UserID string
	From   string // Format: YYYY-MM-DD
	To     string // Format: YYYY-MM-DD, inclusive
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64         `json:"id"`
	User      *UserResponse `json:"user,omitempty"`
	Action    string        `json:"action"`
	Subject   string        `json:"subject"`
	EntityID  string        `json:"entity_id,omitempty"`
	Metadata  entity.JSON   `json:"metadata"`
	CreatedAt time.Time     `json:"created_at"`
}
