package candidate

import (
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const DefaultListLimit = 10

type CreateCandidateRequest struct {
	Name                   string          `json:"name"`
	Email                  string          `json:"email"`
	Phone                  string          `json:"phone"`
	JobPostingID           int64           `json:"job_posting_id"`
	JobPostingTitle        string          `json:"job_posting_title"`
	CurrentHiringStageID   *int64          `json:"current_hiring_stage_id,omitempty"`
	CurrentHiringStageName string          `json:"current_hiring_stage_name,omitempty"`
	Status                 string          `json:"status"` // empty means Applied
	IsActive               string          `json:"is_active"`
	AppliedDate            string          `json:"applied_date"`
	ExperienceYears        decimal.Decimal `json:"experience_years"`
	ExpectedSalary         decimal.Decimal `json:"expected_salary"`
	Notes                  string          `json:"notes,omitempty"`
}

func (r *CreateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlagOrEmpty("is_active", r.IsActive)...)

	return errs.OrNil()
}

type UpdateCandidateRequest struct {
	ID                     int64            `json:"-"`
	Name                   *string          `json:"name,omitempty"`
	Email                  *string          `json:"email,omitempty"`
	Phone                  *string          `json:"phone,omitempty"`
	JobPostingID           *int64           `json:"job_posting_id,omitempty"`
	JobPostingTitle        *string          `json:"job_posting_title,omitempty"`
	CurrentHiringStageID   *int64           `json:"current_hiring_stage_id,omitempty"`
	CurrentHiringStageName *string          `json:"current_hiring_stage_name,omitempty"`
	Status                 *string          `json:"status,omitempty"`
	IsActive               *string          `json:"is_active,omitempty"`
	AppliedDate            *string          `json:"applied_date,omitempty"`
	ExperienceYears        *decimal.Decimal `json:"experience_years,omitempty"`
	ExpectedSalary         *decimal.Decimal `json:"expected_salary,omitempty"`
	Notes                  *string          `json:"notes,omitempty"`
}

func (r *UpdateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlag("is_active", r.IsActive)...)

	return errs.OrNil()
}

type CandidateFilter struct {
	// Search & Filter
	Search               *string `json:"search,omitempty"`
	JobPostingID         *int64  `json:"job_posting_id,omitempty"`
	CurrentHiringStageID *int64  `json:"current_hiring_stage_id,omitempty"`
	Status               *string `json:"status,omitempty"`
	IsActive             *string `json:"is_active,omitempty"`
	AppliedDateFrom      *string `json:"applied_date_from,omitempty"` // YYYY-MM-DD
	AppliedDateTo        *string `json:"applied_date_to,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *CandidateFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultListLimit)...)
	errs = append(errs, validator.OneOf("status", f.Status, Statuses)...)
	errs = append(errs, validator.ActiveFlag("is_active", f.IsActive)...)
	errs = append(errs, validator.OptionalDate("applied_date_from", f.AppliedDateFrom)...)
	errs = append(errs, validator.OptionalDate("applied_date_to", f.AppliedDateTo)...)

	return errs.OrNil()
}

type CandidateStats struct {
	TotalCandidates int            `json:"total_candidates"`
	ByStatus        map[string]int `json:"by_status"`
	ByJobPosting    map[string]int `json:"by_job_posting"`
	HiredCount      int            `json:"hired_count"`
	ConversionRate  float64        `json:"conversion_rate"`
}

type ListCandidateResponse struct {
	Candidates []Candidate    `json:"candidates"`
	Meta       query.Meta     `json:"meta"`
	Stats      CandidateStats `json:"stats"`
}
