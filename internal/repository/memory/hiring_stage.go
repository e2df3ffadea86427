package memory

import (
	"github.com/cmlabs-hris/hris-records-go/internal/domain/hiringstage"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
)

type hiringStageRepositoryImpl struct {
	crud[hiringstage.HiringStage, *hiringstage.HiringStage]
}

func NewHiringStageRepository(db *database.DB) hiringstage.HiringStageRepository {
	return &hiringStageRepositoryImpl{
		crud: newCrud[hiringstage.HiringStage, *hiringstage.HiringStage](db, hiringstage.ErrHiringStageNotFound),
	}
}
