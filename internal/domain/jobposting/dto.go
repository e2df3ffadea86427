package jobposting

import (
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
)

const DefaultListLimit = 10

type CreateJobPostingRequest struct {
	Title               string                  `json:"title"`
	Code                string                  `json:"code"`
	DepartmentID        int64                   `json:"department_id"`
	DepartmentName      string                  `json:"department_name"`
	Location            string                  `json:"location"`
	EmploymentType      string                  `json:"employment_type"`
	Openings            int                     `json:"openings"`
	Status              string                  `json:"status"` // empty means Draft
	IsActive            string                  `json:"is_active"`
	PostedDate          string                  `json:"posted_date"`
	ClosingDate         string                  `json:"closing_date"`
	Description         string                  `json:"description,omitempty"`
	HiringStages        []StageRef              `json:"hiring_stages"`
	AttachmentsRequired []AttachmentRequirement `json:"attachments_required"`
}

func (r *CreateJobPostingRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlagOrEmpty("is_active", r.IsActive)...)

	return errs.OrNil()
}

type UpdateJobPostingRequest struct {
	ID                  int64                   `json:"-"`
	Title               *string                 `json:"title,omitempty"`
	Code                *string                 `json:"code,omitempty"`
	DepartmentID        *int64                  `json:"department_id,omitempty"`
	DepartmentName      *string                 `json:"department_name,omitempty"`
	Location            *string                 `json:"location,omitempty"`
	EmploymentType      *string                 `json:"employment_type,omitempty"`
	Openings            *int                    `json:"openings,omitempty"`
	Status              *string                 `json:"status,omitempty"`
	IsActive            *string                 `json:"is_active,omitempty"`
	PostedDate          *string                 `json:"posted_date,omitempty"`
	ClosingDate         *string                 `json:"closing_date,omitempty"`
	Description         *string                 `json:"description,omitempty"`
	HiringStages        []StageRef              `json:"hiring_stages,omitempty"`
	AttachmentsRequired []AttachmentRequirement `json:"attachments_required,omitempty"`
}

func (r *UpdateJobPostingRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlag("is_active", r.IsActive)...)

	return errs.OrNil()
}

type JobPostingFilter struct {
	// Search & Filter
	Search         *string `json:"search,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	Status         *string `json:"status,omitempty"`
	IsActive       *string `json:"is_active,omitempty"`
	PostedDateFrom *string `json:"posted_date_from,omitempty"`
	PostedDateTo   *string `json:"posted_date_to,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *JobPostingFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultListLimit)...)
	errs = append(errs, validator.OneOf("status", f.Status, Statuses)...)
	errs = append(errs, validator.ActiveFlag("is_active", f.IsActive)...)
	errs = append(errs, validator.OptionalDate("posted_date_from", f.PostedDateFrom)...)
	errs = append(errs, validator.OptionalDate("posted_date_to", f.PostedDateTo)...)

	return errs.OrNil()
}

type JobPostingStats struct {
	TotalPostings int            `json:"total_postings"`
	OpenPostings  int            `json:"open_postings"`
	TotalOpenings int            `json:"total_openings"`
	ByStatus      map[string]int `json:"by_status"`
	ByDepartment  map[string]int `json:"by_department"`
}

type ListJobPostingResponse struct {
	JobPostings []JobPosting    `json:"job_postings"`
	Meta        query.Meta      `json:"meta"`
	Stats       JobPostingStats `json:"stats"`
}
