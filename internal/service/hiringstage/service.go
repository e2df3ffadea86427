package hiringstage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/hiringstage"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
)

type HiringStageServiceImpl struct {
	stageRepo hiringstage.HiringStageRepository
	latency   latency.Simulator
}

func NewHiringStageService(stageRepo hiringstage.HiringStageRepository, sim latency.Simulator) hiringstage.HiringStageService {
	return &HiringStageServiceImpl{
		stageRepo: stageRepo,
		latency:   sim,
	}
}

func (s *HiringStageServiceImpl) GetHiringStage(ctx context.Context, id int64) (hiringstage.HiringStage, error) {
	if err := s.latency.WaitFetch(ctx); err != nil {
		return hiringstage.HiringStage{}, err
	}
	return s.stageRepo.GetByID(ctx, id)
}

func (s *HiringStageServiceImpl) CreateHiringStage(ctx context.Context, req hiringstage.CreateHiringStageRequest) (hiringstage.HiringStage, error) {
	if err := req.Validate(); err != nil {
		return hiringstage.HiringStage{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return hiringstage.HiringStage{}, err
	}

	created, err := s.stageRepo.Create(ctx, hiringstage.HiringStage{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		IsActive:    record.FlagOrActive(req.IsActive),
	})
	if err != nil {
		return hiringstage.HiringStage{}, fmt.Errorf("failed to create hiring stage: %w", err)
	}

	slog.InfoContext(ctx, "Hiring stage created", "hiring_stage_id", created.ID)
	return created, nil
}

func (s *HiringStageServiceImpl) UpdateHiringStage(ctx context.Context, req hiringstage.UpdateHiringStageRequest) (hiringstage.HiringStage, error) {
	if err := req.Validate(); err != nil {
		return hiringstage.HiringStage{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return hiringstage.HiringStage{}, err
	}

	current, err := s.stageRepo.GetByID(ctx, req.ID)
	if err != nil {
		return hiringstage.HiringStage{}, err
	}

	utils.Patch(&current.Name, req.Name)
	utils.Patch(&current.Code, req.Code)
	utils.Patch(&current.Description, req.Description)
	if req.IsActive != nil {
		current.IsActive = record.FlagOrActive(*req.IsActive)
	}

	return s.stageRepo.Update(ctx, current)
}

func (s *HiringStageServiceImpl) DeleteHiringStage(ctx context.Context, id int64) error {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return err
	}
	return s.stageRepo.Delete(ctx, id)
}

func (s *HiringStageServiceImpl) ListHiringStages(ctx context.Context, filter hiringstage.HiringStageFilter) (hiringstage.ListHiringStageResponse, error) {
	if err := filter.Validate(); err != nil {
		return hiringstage.ListHiringStageResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return hiringstage.ListHiringStageResponse{}, err
	}

	all, err := s.stageRepo.List(ctx)
	if err != nil {
		return hiringstage.ListHiringStageResponse{}, fmt.Errorf("failed to list hiring stages: %w", err)
	}

	filtered := query.Filter(all,
		query.Search(utils.Deref(filter.Search),
			func(h hiringstage.HiringStage) string { return h.Name },
			func(h hiringstage.HiringStage) string { return h.Code },
		),
		query.Equals(filter.IsActive, func(h hiringstage.HiringStage) string { return string(h.IsActive) }),
	)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	active := query.Count(filtered, func(h hiringstage.HiringStage) bool { return h.IsActive == record.Active })
	return hiringstage.ListHiringStageResponse{
		HiringStages: page.Items,
		Meta:         page.Meta,
		Stats: hiringstage.HiringStageStats{
			TotalStages:    len(filtered),
			ActiveStages:   active,
			InactiveStages: len(filtered) - active,
		},
	}, nil
}
