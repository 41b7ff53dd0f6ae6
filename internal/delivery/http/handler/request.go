package handler

import (
	"net/http"
	"strconv"

	"therapy-clinic-api/internal/delivery/dto"
	"therapy-clinic-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// listQueryFromRequest reads page, limit and search from the query string.
// Unparseable numbers fall back to the defaults.
func listQueryFromRequest(r *http.Request) *dto.ListQuery {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	query := &dto.ListQuery{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
	}
	query.Normalize()
	return query
}

func pathInt64(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

func writeList(w http.ResponseWriter, message string, data interface{}, query *dto.ListQuery, total int64) {
	response.SuccessWithMeta(w, http.StatusOK, message, data, response.NewMeta(query.Page, query.Limit, total))
}
