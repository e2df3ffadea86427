package memory

import (
	"github.com/cmlabs-hris/hris-records-go/internal/domain/candidate"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
)

type candidateRepositoryImpl struct {
	crud[candidate.Candidate, *candidate.Candidate]
}

func NewCandidateRepository(db *database.DB) candidate.CandidateRepository {
	return &candidateRepositoryImpl{
		crud: newCrud[candidate.Candidate, *candidate.Candidate](db, candidate.ErrCandidateNotFound),
	}
}
