package hiringstage

import (
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
)

const DefaultListLimit = 100

type CreateHiringStageRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	IsActive    string `json:"is_active"`
}

func (r *CreateHiringStageRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlagOrEmpty("is_active", r.IsActive)...)

	return errs.OrNil()
}

type UpdateHiringStageRequest struct {
	ID          int64   `json:"-"`
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *string `json:"is_active,omitempty"`
}

func (r *UpdateHiringStageRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlag("is_active", r.IsActive)...)

	return errs.OrNil()
}

type HiringStageFilter struct {
	Search   *string `json:"search,omitempty"`
	IsActive *string `json:"is_active,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *HiringStageFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultListLimit)...)
	errs = append(errs, validator.ActiveFlag("is_active", f.IsActive)...)

	return errs.OrNil()
}

type HiringStageStats struct {
	TotalStages    int `json:"total_stages"`
	ActiveStages   int `json:"active_stages"`
	InactiveStages int `json:"inactive_stages"`
}

type ListHiringStageResponse struct {
	HiringStages []HiringStage    `json:"hiring_stages"`
	Meta         query.Meta       `json:"meta"`
	Stats        HiringStageStats `json:"stats"`
}
