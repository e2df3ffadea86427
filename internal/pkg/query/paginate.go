package query

// DateLayout is the YYYY-MM-DD form of every date field.
const DateLayout = "2006-01-02"

// Meta is the pagination block of a list response.
type Meta struct {
	TotalCount  int `json:"total_count"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

type Page[T any] struct {
	Items []T
	Meta  Meta
}

// Paginate slices records into the 1-based page of size limit. Callers
// supply the limit; values below 1 are treated as 1. A page past the end
// yields an empty slice, never an error.
func Paginate[T any](records []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(records)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	// page-1 < totalPages keeps (page-1)*limit below total.
	start, end := total, total
	if page-1 < totalPages {
		start = (page - 1) * limit
		end = total
		if limit < total-start {
			end = start + limit
		}
	}

	items := make([]T, end-start)
	copy(items, records[start:end])

	return Page[T]{
		Items: items,
		Meta: Meta{
			TotalCount:  total,
			CurrentPage: page,
			TotalPages:  totalPages,
		},
	}
}
