package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-records-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// urlID reads the {id} path parameter. It writes a 400 and returns false
// when the parameter is not a positive integer.
func urlID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(w, "Invalid ID", map[string]string{"id": "must be a positive integer"})
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into v. It writes a 400 and
// returns false on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// queryParams collects typed query parameters. Parse failures accumulate
// and are reported together by Err.
type queryParams struct {
	r    *http.Request
	errs validator.ValidationErrors
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (q *queryParams) String(key string) *string {
	v := q.r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryParams) Int64(key string) *int64 {
	v := q.r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		q.errs = append(q.errs, validator.ValidationError{Field: key, Message: key + " must be an integer"})
		return nil
	}
	return &n
}

func (q *queryParams) Int(key string) *int {
	v := q.r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs = append(q.errs, validator.ValidationError{Field: key, Message: key + " must be an integer"})
		return nil
	}
	return &n
}

// Page returns page and limit, zero when absent so the filter applies
// its own defaults. Explicit values below 1 are rejected.
func (q *queryParams) Page() (page, limit int) {
	return q.positive("page"), q.positive("limit")
}

func (q *queryParams) positive(key string) int {
	n := q.Int(key)
	if n == nil {
		return 0
	}
	if *n < 1 {
		q.errs = append(q.errs, validator.ValidationError{Field: key, Message: key + " must be at least 1"})
		return 0
	}
	return *n
}

func (q *queryParams) Err() error {
	return q.errs.OrNil()
}
