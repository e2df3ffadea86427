package candidate

import "context"

type CandidateService interface {
	GetCandidate(ctx context.Context, id int64) (Candidate, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) (ListCandidateResponse, error)
	CreateCandidate(ctx context.Context, req CreateCandidateRequest) (Candidate, error)
	UpdateCandidate(ctx context.Context, req UpdateCandidateRequest) (Candidate, error)
	DeleteCandidate(ctx context.Context, id int64) error
}
