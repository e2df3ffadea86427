package jobposting

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (jobposting.JobPostingService, jobposting.JobPostingRepository) {
	repo := memory.NewJobPostingRepository(database.NewMemoryDB())
	return NewJobPostingService(repo, latency.None()), repo
}

func ptr[T any](v T) *T { return &v }

func createPosting(t *testing.T, svc jobposting.JobPostingService) jobposting.JobPosting {
	t.Helper()
	created, err := svc.CreateJobPosting(context.Background(), jobposting.CreateJobPostingRequest{
		Title:          "Backend Engineer",
		Code:           "ENG-01",
		DepartmentName: "Engineering",
		Location:       "Jakarta",
		Openings:       2,
		Status:         "Open",
		PostedDate:     "2024-01-15",
		HiringStages: []jobposting.StageRef{
			{HiringStageID: 3, HiringStageName: "Offer", Sequence: 3},
			{HiringStageID: 1, HiringStageName: "Screening", Sequence: 1},
			{HiringStageID: 2, HiringStageName: "Interview", Sequence: 2},
		},
		AttachmentsRequired: []jobposting.AttachmentRequirement{{Name: "CV", IsMandatory: true}},
	})
	require.NoError(t, err)
	return created
}

func stageNames(p jobposting.JobPosting) []string {
	var names []string
	for _, s := range p.HiringStages {
		names = append(names, s.HiringStageName)
	}
	return names
}

func TestJobPostingService_Create_OrdersStages(t *testing.T) {
	svc, _ := newTestService()

	created := createPosting(t, svc)

	assert.Equal(t, []string{"Screening", "Interview", "Offer"}, stageNames(created))
	assert.Equal(t, jobposting.StatusOpen, created.Status)
}

func TestJobPostingService_Create_EmptyListsNotNil(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateJobPosting(context.Background(), jobposting.CreateJobPostingRequest{Title: "Intern"})

	require.NoError(t, err)
	assert.NotNil(t, created.HiringStages)
	assert.NotNil(t, created.AttachmentsRequired)
	assert.Equal(t, jobposting.StatusDraft, created.Status)
}

func TestJobPostingService_Update_NilListKeepsChildren(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	created := createPosting(t, svc)

	updated, err := svc.UpdateJobPosting(ctx, jobposting.UpdateJobPostingRequest{
		ID:    created.ID,
		Title: ptr("Senior Backend Engineer"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	assert.Equal(t, created.HiringStages, updated.HiringStages)
	assert.Equal(t, created.AttachmentsRequired, updated.AttachmentsRequired)
}

func TestJobPostingService_Update_ReplacesChildren(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	created := createPosting(t, svc)

	updated, err := svc.UpdateJobPosting(ctx, jobposting.UpdateJobPostingRequest{
		ID: created.ID,
		HiringStages: []jobposting.StageRef{
			{HiringStageID: 9, HiringStageName: "Final", Sequence: 2},
			{HiringStageID: 8, HiringStageName: "Call", Sequence: 1},
		},
		AttachmentsRequired: []jobposting.AttachmentRequirement{},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Call", "Final"}, stageNames(updated))
	assert.Empty(t, updated.AttachmentsRequired)
}

func TestJobPostingService_Get_ReturnsIndependentCopy(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	created := createPosting(t, svc)

	got, err := svc.GetJobPosting(ctx, created.ID)
	require.NoError(t, err)
	got.HiringStages[0].HiringStageName = "mutated"

	again, err := svc.GetJobPosting(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Screening", again.HiringStages[0].HiringStageName)
}

func TestJobPostingService_List_StatsAndSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	createPosting(t, svc)
	_, err := svc.CreateJobPosting(ctx, jobposting.CreateJobPostingRequest{Title: "Designer", DepartmentName: "Product", Location: "Bandung", Status: "Closed", Openings: 1})
	require.NoError(t, err)

	resp, err := svc.ListJobPostings(ctx, jobposting.JobPostingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Stats.TotalPostings)
	assert.Equal(t, 1, resp.Stats.OpenPostings)
	assert.Equal(t, 2, resp.Stats.TotalOpenings)
	assert.Equal(t, map[string]int{"Open": 1, "Closed": 1}, resp.Stats.ByStatus)

	resp, err = svc.ListJobPostings(ctx, jobposting.JobPostingFilter{Search: ptr("bandung")})
	require.NoError(t, err)
	require.Len(t, resp.JobPostings, 1)
	assert.Equal(t, "Designer", resp.JobPostings[0].Title)
}

func TestJobPostingService_Delete_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.DeleteJobPosting(context.Background(), 5)

	assert.ErrorIs(t, err, jobposting.ErrJobPostingNotFound)
}
