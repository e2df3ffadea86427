package candidate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/candidate"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
)

type CandidateServiceImpl struct {
	candidateRepo candidate.CandidateRepository
	latency       latency.Simulator
}

func NewCandidateService(candidateRepo candidate.CandidateRepository, sim latency.Simulator) candidate.CandidateService {
	return &CandidateServiceImpl{
		candidateRepo: candidateRepo,
		latency:       sim,
	}
}

func (s *CandidateServiceImpl) GetCandidate(ctx context.Context, id int64) (candidate.Candidate, error) {
	if err := s.latency.WaitFetch(ctx); err != nil {
		return candidate.Candidate{}, err
	}
	return s.candidateRepo.GetByID(ctx, id)
}

func (s *CandidateServiceImpl) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (candidate.Candidate, error) {
	if err := req.Validate(); err != nil {
		return candidate.Candidate{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return candidate.Candidate{}, err
	}

	status := candidate.Status(req.Status)
	if status == "" {
		status = candidate.StatusApplied
	}

	created, err := s.candidateRepo.Create(ctx, candidate.Candidate{
		Name:                   req.Name,
		Email:                  req.Email,
		Phone:                  req.Phone,
		JobPostingID:           req.JobPostingID,
		JobPostingTitle:        req.JobPostingTitle,
		CurrentHiringStageID:   req.CurrentHiringStageID,
		CurrentHiringStageName: req.CurrentHiringStageName,
		Status:                 status,
		IsActive:               record.FlagOrActive(req.IsActive),
		AppliedDate:            req.AppliedDate,
		ExperienceYears:        req.ExperienceYears,
		ExpectedSalary:         req.ExpectedSalary,
		Notes:                  req.Notes,
	})
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}

	slog.InfoContext(ctx, "Candidate created", "candidate_id", created.ID, "job_posting_id", created.JobPostingID)
	return created, nil
}

func (s *CandidateServiceImpl) UpdateCandidate(ctx context.Context, req candidate.UpdateCandidateRequest) (candidate.Candidate, error) {
	if err := req.Validate(); err != nil {
		return candidate.Candidate{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return candidate.Candidate{}, err
	}

	current, err := s.candidateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return candidate.Candidate{}, err
	}
	previous := current.Status

	utils.Patch(&current.Name, req.Name)
	utils.Patch(&current.Email, req.Email)
	utils.Patch(&current.Phone, req.Phone)
	utils.Patch(&current.JobPostingID, req.JobPostingID)
	utils.Patch(&current.JobPostingTitle, req.JobPostingTitle)
	utils.PatchPtr(&current.CurrentHiringStageID, req.CurrentHiringStageID)
	utils.Patch(&current.CurrentHiringStageName, req.CurrentHiringStageName)
	if req.Status != nil {
		current.Status = candidate.Status(*req.Status)
	}
	if req.IsActive != nil {
		current.IsActive = record.FlagOrActive(*req.IsActive)
	}
	utils.Patch(&current.AppliedDate, req.AppliedDate)
	utils.Patch(&current.ExperienceYears, req.ExperienceYears)
	utils.Patch(&current.ExpectedSalary, req.ExpectedSalary)
	utils.Patch(&current.Notes, req.Notes)

	updated, err := s.candidateRepo.Update(ctx, current)
	if err != nil {
		return candidate.Candidate{}, err
	}

	if previous != updated.Status {
		slog.InfoContext(ctx, "Candidate status changed",
			"candidate_id", updated.ID,
			"from", previous,
			"to", updated.Status,
		)
	} else {
		slog.InfoContext(ctx, "Candidate updated", "candidate_id", updated.ID)
	}
	return updated, nil
}

func (s *CandidateServiceImpl) DeleteCandidate(ctx context.Context, id int64) error {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return err
	}

	if err := s.candidateRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Candidate deleted", "candidate_id", id)
	return nil
}

func (s *CandidateServiceImpl) ListCandidates(ctx context.Context, filter candidate.CandidateFilter) (candidate.ListCandidateResponse, error) {
	if err := filter.Validate(); err != nil {
		return candidate.ListCandidateResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return candidate.ListCandidateResponse{}, err
	}

	all, err := s.candidateRepo.List(ctx)
	if err != nil {
		return candidate.ListCandidateResponse{}, fmt.Errorf("failed to list candidates: %w", err)
	}

	filtered := FilterCandidates(all, filter)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	return candidate.ListCandidateResponse{
		Candidates: page.Items,
		Meta:       page.Meta,
		Stats:      Stats(filtered),
	}, nil
}

// FilterCandidates applies every criterion of filter except pagination.
func FilterCandidates(all []candidate.Candidate, filter candidate.CandidateFilter) []candidate.Candidate {
	return query.Filter(all,
		query.Search(utils.Deref(filter.Search),
			func(c candidate.Candidate) string { return c.Name },
			func(c candidate.Candidate) string { return c.Email },
			func(c candidate.Candidate) string { return c.Phone },
			func(c candidate.Candidate) string { return c.JobPostingTitle },
		),
		query.Equals(filter.JobPostingID, func(c candidate.Candidate) int64 { return c.JobPostingID }),
		query.EqualsPtr(filter.CurrentHiringStageID, func(c candidate.Candidate) *int64 { return c.CurrentHiringStageID }),
		query.Equals(filter.Status, func(c candidate.Candidate) string { return string(c.Status) }),
		query.Equals(filter.IsActive, func(c candidate.Candidate) string { return string(c.IsActive) }),
		query.DateRange(filter.AppliedDateFrom, filter.AppliedDateTo, func(c candidate.Candidate) string { return c.AppliedDate }),
	)
}

func Stats(records []candidate.Candidate) candidate.CandidateStats {
	hired := query.Count(records, func(c candidate.Candidate) bool { return c.Status == candidate.StatusHired })
	return candidate.CandidateStats{
		TotalCandidates: len(records),
		ByStatus:        query.GroupCount(records, func(c candidate.Candidate) string { return string(c.Status) }),
		ByJobPosting:    query.GroupCount(records, func(c candidate.Candidate) string { return c.JobPostingTitle }),
		HiredCount:      hired,
		ConversionRate:  query.Rate(hired, len(records)),
	}
}
