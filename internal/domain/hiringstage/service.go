package hiringstage

import "context"

type HiringStageService interface {
	GetHiringStage(ctx context.Context, id int64) (HiringStage, error)
	ListHiringStages(ctx context.Context, filter HiringStageFilter) (ListHiringStageResponse, error)
	CreateHiringStage(ctx context.Context, req CreateHiringStageRequest) (HiringStage, error)
	UpdateHiringStage(ctx context.Context, req UpdateHiringStageRequest) (HiringStage, error)
	DeleteHiringStage(ctx context.Context, id int64) error
}
