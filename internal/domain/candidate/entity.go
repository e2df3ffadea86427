package candidate

import (
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusApplied   Status = "Applied"
	StatusScreening Status = "Screening"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusHired     Status = "Hired"
	StatusRejected  Status = "Rejected"
	StatusWithdrawn Status = "Withdrawn"
)

var Statuses = []string{
	string(StatusApplied),
	string(StatusScreening),
	string(StatusInterview),
	string(StatusOffer),
	string(StatusHired),
	string(StatusRejected),
	string(StatusWithdrawn),
}

// Candidate is an applicant for a job posting. Status may move between any
// two values; the posting and stage references are not checked.
type Candidate struct {
	record.Base
	Name                   string            `json:"name"`
	Email                  string            `json:"email"`
	Phone                  string            `json:"phone"`
	JobPostingID           int64             `json:"job_posting_id"`
	JobPostingTitle        string            `json:"job_posting_title"`
	CurrentHiringStageID   *int64            `json:"current_hiring_stage_id,omitempty"`
	CurrentHiringStageName string            `json:"current_hiring_stage_name,omitempty"`
	Status                 Status            `json:"status"`
	IsActive               record.ActiveFlag `json:"is_active"`
	AppliedDate            string            `json:"applied_date"` // YYYY-MM-DD
	ExperienceYears        decimal.Decimal   `json:"experience_years"`
	ExpectedSalary         decimal.Decimal   `json:"expected_salary"`
	Notes                  string            `json:"notes,omitempty"`
}

// Clone implements database.Cloner.
func (c Candidate) Clone() Candidate {
	c.CurrentHiringStageID = record.ClonePtr(c.CurrentHiringStageID)
	return c
}
