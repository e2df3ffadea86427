package jobposting

import (
	"slices"
	"sort"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
)

type Status string

const (
	StatusDraft  Status = "Draft"
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

var Statuses = []string{string(StatusDraft), string(StatusOpen), string(StatusClosed)}

// StageRef places a hiring stage in a posting's pipeline.
type StageRef struct {
	HiringStageID   int64  `json:"hiring_stage_id"`
	HiringStageName string `json:"hiring_stage_name"`
	Sequence        int    `json:"sequence"`
}

type AttachmentRequirement struct {
	Name        string `json:"name"`
	IsMandatory bool   `json:"is_mandatory"`
}

// JobPosting owns its stage pipeline and attachment list. Both are stored
// with the posting and replaced wholesale on update.
type JobPosting struct {
	record.Base
	Title               string                  `json:"title"`
	Code                string                  `json:"code"`
	DepartmentID        int64                   `json:"department_id"`
	DepartmentName      string                  `json:"department_name"`
	Location            string                  `json:"location"`
	EmploymentType      string                  `json:"employment_type"`
	Openings            int                     `json:"openings"`
	Status              Status                  `json:"status"`
	IsActive            record.ActiveFlag       `json:"is_active"`
	PostedDate          string                  `json:"posted_date"`  // YYYY-MM-DD
	ClosingDate         string                  `json:"closing_date"` // YYYY-MM-DD
	Description         string                  `json:"description,omitempty"`
	HiringStages        []StageRef              `json:"hiring_stages"`
	AttachmentsRequired []AttachmentRequirement `json:"attachments_required"`
}

// Clone implements database.Cloner.
func (j JobPosting) Clone() JobPosting {
	j.HiringStages = slices.Clone(j.HiringStages)
	j.AttachmentsRequired = slices.Clone(j.AttachmentsRequired)
	return j
}

// Recompute orders the pipeline by sequence. Stages sharing a sequence keep
// their submitted order.
func (j *JobPosting) Recompute() {
	sort.SliceStable(j.HiringStages, func(a, b int) bool {
		return j.HiringStages[a].Sequence < j.HiringStages[b].Sequence
	})
}
