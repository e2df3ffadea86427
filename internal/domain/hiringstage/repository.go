package hiringstage

import "context"

type HiringStageRepository interface {
	GetByID(ctx context.Context, id int64) (HiringStage, error)
	List(ctx context.Context) ([]HiringStage, error)
	Create(ctx context.Context, stage HiringStage) (HiringStage, error)
	Update(ctx context.Context, stage HiringStage) (HiringStage, error)
	Delete(ctx context.Context, id int64) error
}
