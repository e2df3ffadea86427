package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// OrNil returns nil for an empty list so callers can `return errs.OrNil()`.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// IsValidClock accepts HH:MM or HH:MM:SS on a 24h clock.
func IsValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}

// Pagination fills in page/limit defaults and rejects negative values.
func Pagination(page, limit *int, defaultLimit int) ValidationErrors {
	var errs ValidationErrors

	if *page < 0 {
		errs = append(errs, ValidationError{Field: "page", Message: "page must be a positive number"})
	}
	if *page == 0 {
		*page = 1
	}

	if *limit < 0 {
		errs = append(errs, ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if *limit == 0 {
		*limit = defaultLimit
	}

	return errs
}

// ActiveFlag checks an optional Y/N filter.
func ActiveFlag(field string, value *string) ValidationErrors {
	if value == nil || *value == "Y" || *value == "N" {
		return nil
	}
	return ValidationErrors{{Field: field, Message: field + " must be Y or N"}}
}

// ActiveFlagOrEmpty checks a create payload flag, where empty means Y.
func ActiveFlagOrEmpty(field, value string) ValidationErrors {
	if value == "" {
		return nil
	}
	return ActiveFlag(field, &value)
}

// OptionalDate checks an optional YYYY-MM-DD filter.
func OptionalDate(field string, value *string) ValidationErrors {
	if value == nil {
		return nil
	}
	if _, ok := IsValidDate(*value); !ok {
		return ValidationErrors{{Field: field, Message: field + " must be in YYYY-MM-DD format"}}
	}
	return nil
}

// OneOf checks an optional enumerated filter.
func OneOf(field string, value *string, allowed []string) ValidationErrors {
	if value == nil || IsInSlice(*value, allowed) {
		return nil
	}
	return ValidationErrors{{Field: field, Message: field + " must be one of: " + strings.Join(allowed, ", ")}}
}
