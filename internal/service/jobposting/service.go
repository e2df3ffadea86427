package jobposting

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
)

type JobPostingServiceImpl struct {
	postingRepo jobposting.JobPostingRepository
	latency     latency.Simulator
}

func NewJobPostingService(postingRepo jobposting.JobPostingRepository, sim latency.Simulator) jobposting.JobPostingService {
	return &JobPostingServiceImpl{
		postingRepo: postingRepo,
		latency:     sim,
	}
}

func (s *JobPostingServiceImpl) GetJobPosting(ctx context.Context, id int64) (jobposting.JobPosting, error) {
	if err := s.latency.WaitFetch(ctx); err != nil {
		return jobposting.JobPosting{}, err
	}
	return s.postingRepo.GetByID(ctx, id)
}

func (s *JobPostingServiceImpl) CreateJobPosting(ctx context.Context, req jobposting.CreateJobPostingRequest) (jobposting.JobPosting, error) {
	if err := req.Validate(); err != nil {
		return jobposting.JobPosting{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return jobposting.JobPosting{}, err
	}

	status := jobposting.Status(req.Status)
	if status == "" {
		status = jobposting.StatusDraft
	}

	posting := jobposting.JobPosting{
		Title:               req.Title,
		Code:                req.Code,
		DepartmentID:        req.DepartmentID,
		DepartmentName:      req.DepartmentName,
		Location:            req.Location,
		EmploymentType:      req.EmploymentType,
		Openings:            req.Openings,
		Status:              status,
		IsActive:            record.FlagOrActive(req.IsActive),
		PostedDate:          req.PostedDate,
		ClosingDate:         req.ClosingDate,
		Description:         req.Description,
		HiringStages:        nonNil(slices.Clone(req.HiringStages)),
		AttachmentsRequired: nonNil(slices.Clone(req.AttachmentsRequired)),
	}
	posting.Recompute()

	created, err := s.postingRepo.Create(ctx, posting)
	if err != nil {
		return jobposting.JobPosting{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	slog.InfoContext(ctx, "Job posting created",
		"job_posting_id", created.ID,
		"stages", len(created.HiringStages),
	)
	return created, nil
}

func (s *JobPostingServiceImpl) UpdateJobPosting(ctx context.Context, req jobposting.UpdateJobPostingRequest) (jobposting.JobPosting, error) {
	if err := req.Validate(); err != nil {
		return jobposting.JobPosting{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return jobposting.JobPosting{}, err
	}

	current, err := s.postingRepo.GetByID(ctx, req.ID)
	if err != nil {
		return jobposting.JobPosting{}, err
	}

	utils.Patch(&current.Title, req.Title)
	utils.Patch(&current.Code, req.Code)
	utils.Patch(&current.DepartmentID, req.DepartmentID)
	utils.Patch(&current.DepartmentName, req.DepartmentName)
	utils.Patch(&current.Location, req.Location)
	utils.Patch(&current.EmploymentType, req.EmploymentType)
	utils.Patch(&current.Openings, req.Openings)
	if req.Status != nil {
		current.Status = jobposting.Status(*req.Status)
	}
	if req.IsActive != nil {
		current.IsActive = record.FlagOrActive(*req.IsActive)
	}
	utils.Patch(&current.PostedDate, req.PostedDate)
	utils.Patch(&current.ClosingDate, req.ClosingDate)
	utils.Patch(&current.Description, req.Description)
	if req.HiringStages != nil {
		current.HiringStages = slices.Clone(req.HiringStages)
	}
	if req.AttachmentsRequired != nil {
		current.AttachmentsRequired = slices.Clone(req.AttachmentsRequired)
	}
	current.Recompute()

	updated, err := s.postingRepo.Update(ctx, current)
	if err != nil {
		return jobposting.JobPosting{}, err
	}

	slog.InfoContext(ctx, "Job posting updated", "job_posting_id", updated.ID)
	return updated, nil
}

// DeleteJobPosting removes the posting with its stage pipeline and
// attachment list.
func (s *JobPostingServiceImpl) DeleteJobPosting(ctx context.Context, id int64) error {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return err
	}

	if err := s.postingRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Job posting deleted", "job_posting_id", id)
	return nil
}

func (s *JobPostingServiceImpl) ListJobPostings(ctx context.Context, filter jobposting.JobPostingFilter) (jobposting.ListJobPostingResponse, error) {
	if err := filter.Validate(); err != nil {
		return jobposting.ListJobPostingResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return jobposting.ListJobPostingResponse{}, err
	}

	all, err := s.postingRepo.List(ctx)
	if err != nil {
		return jobposting.ListJobPostingResponse{}, fmt.Errorf("failed to list job postings: %w", err)
	}

	filtered := FilterJobPostings(all, filter)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	return jobposting.ListJobPostingResponse{
		JobPostings: page.Items,
		Meta:        page.Meta,
		Stats:       Stats(filtered),
	}, nil
}

func FilterJobPostings(all []jobposting.JobPosting, filter jobposting.JobPostingFilter) []jobposting.JobPosting {
	return query.Filter(all,
		query.Search(utils.Deref(filter.Search),
			func(j jobposting.JobPosting) string { return j.Title },
			func(j jobposting.JobPosting) string { return j.Code },
			func(j jobposting.JobPosting) string { return j.DepartmentName },
			func(j jobposting.JobPosting) string { return j.Location },
		),
		query.Equals(filter.DepartmentID, func(j jobposting.JobPosting) int64 { return j.DepartmentID }),
		query.Equals(filter.Status, func(j jobposting.JobPosting) string { return string(j.Status) }),
		query.Equals(filter.IsActive, func(j jobposting.JobPosting) string { return string(j.IsActive) }),
		query.DateRange(filter.PostedDateFrom, filter.PostedDateTo, func(j jobposting.JobPosting) string { return j.PostedDate }),
	)
}

func Stats(records []jobposting.JobPosting) jobposting.JobPostingStats {
	open := query.Filter(records, func(j jobposting.JobPosting) bool { return j.Status == jobposting.StatusOpen })
	return jobposting.JobPostingStats{
		TotalPostings: len(records),
		OpenPostings:  len(open),
		TotalOpenings: int(query.Sum(open, func(j jobposting.JobPosting) float64 { return float64(j.Openings) })),
		ByStatus:      query.GroupCount(records, func(j jobposting.JobPosting) string { return string(j.Status) }),
		ByDepartment:  query.GroupCount(records, func(j jobposting.JobPosting) string { return j.DepartmentName }),
	}
}

// nonNil keeps empty child lists serialising as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
