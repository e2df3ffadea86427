package hiringstage

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/hiringstage"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-records-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newSeededService(t *testing.T) hiringstage.HiringStageService {
	t.Helper()
	repo := memory.NewHiringStageRepository(database.NewMemoryDB())
	svc := NewHiringStageService(repo, latency.None())

	for _, req := range []hiringstage.CreateHiringStageRequest{
		{Name: "Screening", Code: "SCR"},
		{Name: "Technical Interview", Code: "INT"},
		{Name: "Offer", Code: "OFF", IsActive: "N"},
	} {
		_, err := svc.CreateHiringStage(context.Background(), req)
		require.NoError(t, err)
	}
	return svc
}

func TestHiringStageService_Create_DefaultsActive(t *testing.T) {
	svc := newSeededService(t)

	got, err := svc.GetHiringStage(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, record.Active, got.IsActive)
	assert.Equal(t, "Screening", got.Name)
}

func TestHiringStageService_List_FiltersAndStats(t *testing.T) {
	svc := newSeededService(t)

	all, err := svc.ListHiringStages(context.Background(), hiringstage.HiringStageFilter{})
	require.NoError(t, err)
	assert.Equal(t, hiringstage.HiringStageStats{TotalStages: 3, ActiveStages: 2, InactiveStages: 1}, all.Stats)
	assert.Equal(t, 3, all.Meta.TotalCount)
	assert.Equal(t, 1, all.Meta.TotalPages)

	searched, err := svc.ListHiringStages(context.Background(), hiringstage.HiringStageFilter{Search: ptr("int")})
	require.NoError(t, err)
	require.Len(t, searched.HiringStages, 1)
	assert.Equal(t, "INT", searched.HiringStages[0].Code)

	inactive, err := svc.ListHiringStages(context.Background(), hiringstage.HiringStageFilter{IsActive: ptr("N")})
	require.NoError(t, err)
	assert.Equal(t, 1, inactive.Stats.TotalStages)
	assert.Equal(t, 0, inactive.Stats.ActiveStages)
}

func TestHiringStageService_List_RejectsBadFlag(t *testing.T) {
	svc := newSeededService(t)

	_, err := svc.ListHiringStages(context.Background(), hiringstage.HiringStageFilter{IsActive: ptr("yes")})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "is_active")
}

func TestHiringStageService_Update_PatchesGivenFields(t *testing.T) {
	svc := newSeededService(t)

	updated, err := svc.UpdateHiringStage(context.Background(), hiringstage.UpdateHiringStageRequest{
		ID:       3,
		IsActive: ptr("Y"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Offer", updated.Name)
	assert.Equal(t, record.Active, updated.IsActive)
}

func TestHiringStageService_NotFound(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	_, err := svc.GetHiringStage(ctx, 42)
	assert.ErrorIs(t, err, hiringstage.ErrHiringStageNotFound)

	_, err = svc.UpdateHiringStage(ctx, hiringstage.UpdateHiringStageRequest{ID: 42, Name: ptr("x")})
	assert.ErrorIs(t, err, hiringstage.ErrHiringStageNotFound)

	assert.ErrorIs(t, svc.DeleteHiringStage(ctx, 42), hiringstage.ErrHiringStageNotFound)

	list, err := svc.ListHiringStages(ctx, hiringstage.HiringStageFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Meta.TotalCount)
}

func TestHiringStageService_Delete(t *testing.T) {
	svc := newSeededService(t)

	require.NoError(t, svc.DeleteHiringStage(context.Background(), 2))

	_, err := svc.GetHiringStage(context.Background(), 2)
	assert.ErrorIs(t, err, hiringstage.ErrHiringStageNotFound)
}

func TestHiringStageService_Create_RejectsUnknownActiveFlag(t *testing.T) {
	svc := newSeededService(t)

	_, err := svc.CreateHiringStage(context.Background(), hiringstage.CreateHiringStageRequest{Name: "Final", IsActive: "maybe"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	list, err := svc.ListHiringStages(context.Background(), hiringstage.HiringStageFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Meta.TotalCount)
}
