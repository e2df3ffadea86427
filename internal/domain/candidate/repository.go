package candidate

import "context"

type CandidateRepository interface {
	GetByID(ctx context.Context, id int64) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	Create(ctx context.Context, candidate Candidate) (Candidate, error)
	Update(ctx context.Context, candidate Candidate) (Candidate, error)
	Delete(ctx context.Context, id int64) error
}
