package memory

import (
	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
)

type jobPostingRepositoryImpl struct {
	crud[jobposting.JobPosting, *jobposting.JobPosting]
}

func NewJobPostingRepository(db *database.DB) jobposting.JobPostingRepository {
	return &jobPostingRepositoryImpl{
		crud: newCrud[jobposting.JobPosting, *jobposting.JobPosting](db, jobposting.ErrJobPostingNotFound),
	}
}
