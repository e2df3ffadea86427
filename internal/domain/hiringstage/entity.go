package hiringstage

import "github.com/cmlabs-hris/hris-records-go/internal/domain/record"

// HiringStage is a master record referenced by job postings and candidates.
type HiringStage struct {
	record.Base
	Name        string            `json:"name"`
	Code        string            `json:"code"`
	Description string            `json:"description,omitempty"`
	IsActive    record.ActiveFlag `json:"is_active"`
}
