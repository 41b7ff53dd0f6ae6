package entity

import "time"

const (
	// MinSearchLength is the shortest query a typeahead search will run.
	MinSearchLength = 3
	// SearchResultLimit caps typeahead results.
	SearchResultLimit = 10

	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ListFilter is a domain-level filter for paginated list queries.
// Used by repository layer to avoid coupling with delivery DTOs.
type ListFilter struct {
	Search string // substring, matched with ILIKE
	Limit  int
	Offset int
}

// AuditLogFilter narrows the audit trail. Action matches a prefix, so
// "client." selects every client action. To is exclusive.
type AuditLogFilter struct {
	ListFilter
	Action string
	UserID *int64
	From   *time.Time
	To     *time.Time
}

// AppointmentFilter narrows appointment lists for calendar views.
type AppointmentFilter struct {
	ListFilter
	From        *time.Time
	To          *time.Time
	TherapistID *int64
	Status      AppointmentStatus
}
