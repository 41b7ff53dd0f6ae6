package dto

import "therapy-clinic-api/internal/domain/entity"

// ListQuery carries page, limit and search from the query string.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

// Normalize clamps page and limit into their allowed ranges.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = entity.DefaultPageLimit
	}
	if q.Limit > entity.MaxPageLimit {
		q.Limit = entity.MaxPageLimit
	}
}

func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ToFilter converts the query into the repository filter.
func (q *ListQuery) ToFilter() *entity.ListFilter {
	q.Normalize()
	return &entity.ListFilter{
		Search: q.Search,
		Limit:  q.Limit,
		Offset: q.Offset(),
	}
}
