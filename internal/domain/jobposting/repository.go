package jobposting

import "context"

type JobPostingRepository interface {
	GetByID(ctx context.Context, id int64) (JobPosting, error)
	List(ctx context.Context) ([]JobPosting, error)
	Create(ctx context.Context, posting JobPosting) (JobPosting, error)
	Update(ctx context.Context, posting JobPosting) (JobPosting, error)
	Delete(ctx context.Context, id int64) error
}
