package attendance

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (attendance.AttendanceService, attendance.AttendanceRepository) {
	t.Helper()
	db := database.NewMemoryDB(database.WithClock(func() time.Time {
		return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	}))
	repo := memory.NewAttendanceRepository(db)
	return NewAttendanceService(repo, latency.None()), repo
}

func strPtr(s string) *string { return &s }

func ptr[T any](v T) *T { return &v }

// ===== MARK ATTENDANCE TESTS =====

func TestAttendanceService_Mark_CreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	// Arrange
	first, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID:     7,
		EmployeeName:   "Budi",
		AttendanceDate: "2024-03-01",
		Status:         string(attendance.StatusPresent),
		PunchInTime:    strPtr("09:00"),
		PunchOutTime:   strPtr("18:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeCreated, first.Outcome)
	require.NotNil(t, first.Attendance.TotalHours)
	assert.Equal(t, 9.0, *first.Attendance.TotalHours)

	before, err := repo.List(ctx)
	require.NoError(t, err)

	// Act
	second, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID:     7,
		AttendanceDate: "2024-03-01",
		Status:         string(attendance.StatusHalfDay),
		PunchOutTime:   strPtr("13:00"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeUpdated, second.Outcome)
	assert.Equal(t, first.Attendance.ID, second.Attendance.ID)
	assert.Equal(t, attendance.StatusHalfDay, second.Attendance.Status)
	assert.Equal(t, "Budi", second.Attendance.EmployeeName)
	require.NotNil(t, second.Attendance.TotalHours)
	assert.Equal(t, 4.0, *second.Attendance.TotalHours)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestAttendanceService_Mark_MissingPunchOut(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	result, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID:     1,
		AttendanceDate: "2024-03-02",
		Status:         string(attendance.StatusPresent),
		PunchInTime:    strPtr("08:30"),
	})

	require.NoError(t, err)
	assert.Nil(t, result.Attendance.TotalHours)
}

func TestAttendanceService_Create_KeepsNaturalKeyUnique(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	req := attendance.MarkAttendanceRequest{
		EmployeeID:     3,
		AttendanceDate: "2024-03-04",
		Status:         string(attendance.StatusAbsent),
	}
	a, err := svc.CreateAttendance(ctx, req)
	require.NoError(t, err)
	b, err := svc.CreateAttendance(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	all, _ := repo.List(ctx)
	assert.Len(t, all, 1)
}

func TestAttendanceService_Mark_CancelledContextLeavesStoreUntouched(t *testing.T) {
	db := database.NewMemoryDB()
	repo := memory.NewAttendanceRepository(db)
	svc := NewAttendanceService(repo, latency.Simulator{Mutation: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, AttendanceDate: "2024-03-01"})
	assert.ErrorIs(t, err, context.Canceled)

	all, _ := repo.List(context.Background())
	assert.Empty(t, all)
}

// ===== UPDATE / DELETE TESTS =====

func TestAttendanceService_Update_RecomputesHours(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.CreateAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID:     2,
		AttendanceDate: "2024-03-05",
		Status:         string(attendance.StatusPresent),
		PunchInTime:    strPtr("08:00"),
		PunchOutTime:   strPtr("17:00"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID:           created.ID,
		PunchOutTime: strPtr("16:15"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated.TotalHours)
	assert.Equal(t, 8.25, *updated.TotalHours)
	assert.Equal(t, created.CreateDate, updated.CreateDate)
}

func TestAttendanceService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	_, err := svc.CreateAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, AttendanceDate: "2024-03-01"})
	require.NoError(t, err)
	before, _ := repo.List(ctx)

	_, err = svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{ID: 99, Remarks: strPtr("x")})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	err = svc.DeleteAttendance(ctx, 99)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	after, _ := repo.List(ctx)
	assert.Equal(t, before, after)
}

func TestAttendanceService_Update_RejectsTakenEmployeeDate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	first, err := svc.CreateAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, AttendanceDate: "2025-01-15", Status: string(attendance.StatusPresent)})
	require.NoError(t, err)
	second, err := svc.CreateAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, AttendanceDate: "2025-01-16", Status: string(attendance.StatusAbsent)})
	require.NoError(t, err)
	other, err := svc.CreateAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: 2, AttendanceDate: "2025-01-15", Status: string(attendance.StatusPresent)})
	require.NoError(t, err)

	_, err = svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{ID: second.ID, AttendanceDate: strPtr("2025-01-15")})
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)

	_, err = svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{ID: other.ID, EmployeeID: ptr(int64(1))})
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)

	list, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{
		EmployeeID: ptr(int64(1)),
		StartDate:  strPtr("2025-01-15"),
		EndDate:    strPtr("2025-01-15"),
	})
	require.NoError(t, err)
	require.Len(t, list.Attendances, 1)
	assert.Equal(t, first.ID, list.Attendances[0].ID)

	stored, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-16", stored.AttendanceDate)
}

func TestAttendanceService_Update_KeepsOwnKey(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, err := svc.CreateAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, AttendanceDate: "2025-01-15"})
	require.NoError(t, err)

	updated, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID:             created.ID,
		EmployeeID:     ptr(int64(1)),
		AttendanceDate: strPtr("2025-01-15"),
		Remarks:        strPtr("late"),
	})

	require.NoError(t, err)
	assert.Equal(t, "late", updated.Remarks)
}

func TestAttendanceService_ReturnedRecordsDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	punchIn := strPtr("09:00")

	marked, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID:     1,
		AttendanceDate: "2025-01-15",
		Status:         string(attendance.StatusPresent),
		PunchInTime:    punchIn,
		PunchOutTime:   strPtr("18:00"),
	})
	require.NoError(t, err)

	*punchIn = "01:00"
	*marked.Attendance.PunchOutTime = "23:59"
	*marked.Attendance.TotalHours = 99

	fetched, err := svc.GetAttendance(ctx, marked.Attendance.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", *fetched.PunchInTime)
	assert.Equal(t, "18:00", *fetched.PunchOutTime)
	assert.Equal(t, 9.0, *fetched.TotalHours)

	*fetched.PunchInTime = "12:00"
	again, err := svc.GetAttendance(ctx, marked.Attendance.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", *again.PunchInTime)
}

func TestAttendanceService_Delete_Success(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.CreateAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, AttendanceDate: "2024-03-01"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttendance(ctx, created.ID))

	_, err = svc.GetAttendance(ctx, created.ID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

// ===== LIST TESTS =====

func TestAttendanceService_List_FiltersAndStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	seed := []attendance.MarkAttendanceRequest{
		{EmployeeID: 1, EmployeeName: "Ani", AttendanceDate: "2024-03-01", Status: "Present", PunchInTime: strPtr("09:00"), PunchOutTime: strPtr("17:00")},
		{EmployeeID: 1, EmployeeName: "Ani", AttendanceDate: "2024-03-02", Status: "Absent"},
		{EmployeeID: 2, EmployeeName: "Budi", AttendanceDate: "2024-03-01", Status: "Present", PunchInTime: strPtr("09:00"), PunchOutTime: strPtr("19:00")},
		{EmployeeID: 2, EmployeeName: "Budi", AttendanceDate: "2024-03-10", Status: "Leave"},
	}
	for _, req := range seed {
		_, err := svc.MarkAttendance(ctx, req)
		require.NoError(t, err)
	}

	resp, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{
		StartDate: strPtr("2024-03-01"),
		EndDate:   strPtr("2024-03-02"),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Attendances, 3)
	assert.Equal(t, 3, resp.Meta.TotalCount)
	assert.Equal(t, 1, resp.Meta.CurrentPage)
	assert.Equal(t, 1, resp.Meta.TotalPages)
	assert.Equal(t, map[string]int{"Present": 2, "Absent": 1}, resp.Stats.ByStatus)
	assert.Equal(t, 66.7, resp.Stats.AttendanceRate)
	assert.Equal(t, 9.0, resp.Stats.AverageHours)

	resp, err = svc.ListAttendance(ctx, attendance.AttendanceFilter{Search: strPtr("budi")})
	require.NoError(t, err)
	assert.Len(t, resp.Attendances, 2)
}

func TestAttendanceService_List_InvalidStatus(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListAttendance(context.Background(), attendance.AttendanceFilter{Status: strPtr("Sick")})
	assert.Error(t, err)
}

func TestAttendanceService_List_PaginationCompleteness(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for i := 1; i <= 25; i++ {
		_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
			EmployeeID:     int64(i),
			AttendanceDate: "2024-03-01",
			Status:         "Present",
		})
		require.NoError(t, err)
	}

	seen := map[int64]bool{}
	for page := 1; page <= 3; page++ {
		resp, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{Page: page, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Meta.TotalPages)
		for _, a := range resp.Attendances {
			assert.False(t, seen[a.ID], "record %d returned twice", a.ID)
			seen[a.ID] = true
		}
		if page == 3 {
			assert.Len(t, resp.Attendances, 5)
		}
	}
	assert.Len(t, seen, 25)
}

// ===== DERIVED FIELD PROPERTIES =====

func TestTotalHours_RandomisedPunches(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		inMin := rng.Intn(24 * 60)
		outMin := rng.Intn(24 * 60)
		in := fmt.Sprintf("%02d:%02d", inMin/60, inMin%60)
		out := fmt.Sprintf("%02d:%02d", outMin/60, outMin%60)

		got := attendance.TotalHours(&in, &out)

		require.NotNil(t, got)
		want := float64(int(float64(outMin-inMin)/60*100+sign(outMin-inMin)*0.5)) / 100
		assert.InDelta(t, want, *got, 1e-9, "in=%s out=%s", in, out)
	}
}

func TestTotalHours_NilWhenPunchMissing(t *testing.T) {
	assert.Nil(t, attendance.TotalHours(nil, strPtr("17:00")))
	assert.Nil(t, attendance.TotalHours(strPtr("09:00"), nil))
	assert.Nil(t, attendance.TotalHours(strPtr(""), strPtr("17:00")))
	assert.Nil(t, attendance.TotalHours(strPtr("nine"), strPtr("17:00")))
}

func sign(n int) float64 {
	if n < 0 {
		return -1
	}
	return 1
}
