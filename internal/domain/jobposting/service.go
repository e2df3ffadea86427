package jobposting

import "context"

type JobPostingService interface {
	GetJobPosting(ctx context.Context, id int64) (JobPosting, error)
	ListJobPostings(ctx context.Context, filter JobPostingFilter) (ListJobPostingResponse, error)
	CreateJobPosting(ctx context.Context, req CreateJobPostingRequest) (JobPosting, error)

	// UpdateJobPosting replaces HiringStages or AttachmentsRequired only when
	// the request carries them; a nil list keeps the stored one
	UpdateJobPosting(ctx context.Context, req UpdateJobPostingRequest) (JobPosting, error)

	DeleteJobPosting(ctx context.Context, id int64) error
}
