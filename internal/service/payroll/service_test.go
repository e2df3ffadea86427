package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc       payroll.PayrollService
	runs      payroll.PayrollRepository
	slips     payroll.SalarySlipRepository
	structure payroll.SalaryStructureRepository
}

func newFixture() fixture {
	db := database.NewMemoryDB(database.WithClock(func() time.Time {
		return time.Date(2024, 2, 29, 10, 30, 0, 0, time.UTC)
	}))
	f := fixture{
		runs:      memory.NewPayrollRepository(db),
		slips:     memory.NewSalarySlipRepository(db),
		structure: memory.NewSalaryStructureRepository(db),
	}
	f.svc = NewPayrollService(db, f.runs, f.slips, f.structure, latency.None())
	return f
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func twoEmployeeRun() payroll.CreatePayrollRequest {
	return payroll.CreatePayrollRequest{
		Month:   2,
		Year:    2024,
		Remarks: "February run",
		Items: []payroll.PayrollItemRequest{
			{EmployeeID: 1, EmployeeName: "Ani", TotalEarnings: dec("10000000"), TotalDeductions: dec("500000"), LeaveDeductions: dec("250000")},
			{EmployeeID: 2, EmployeeName: "Budi", TotalEarnings: dec("8000000"), TotalDeductions: dec("400000")},
		},
	}
}

// ===== PROCESSING TESTS =====

func TestPayrollService_Create_DerivesTotals(t *testing.T) {
	f := newFixture()

	run, err := f.svc.CreatePayroll(context.Background(), twoEmployeeRun())

	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusDraft, run.Status)
	assert.Equal(t, 2, run.TotalEmployees)
	assert.True(t, dec("9250000").Equal(run.Items[0].NetSalary))
	assert.True(t, dec("7600000").Equal(run.Items[1].NetSalary))
	assert.True(t, dec("18000000").Equal(run.TotalEarnings))
	assert.True(t, dec("900000").Equal(run.TotalDeductions))
	assert.True(t, dec("250000").Equal(run.TotalLeaveDeductions))
	assert.True(t, dec("16850000").Equal(run.TotalNetSalary))
}

func TestPayrollService_Update_ItemsReplacedAndTotalsFollow(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	run, err := f.svc.CreatePayroll(ctx, twoEmployeeRun())
	require.NoError(t, err)

	updated, err := f.svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{
		ID: run.ID,
		Items: []payroll.PayrollItemRequest{
			{EmployeeID: 1, EmployeeName: "Ani", TotalEarnings: dec("100"), TotalDeductions: dec("10")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, updated.TotalEmployees)
	assert.True(t, dec("90").Equal(updated.TotalNetSalary))
	assert.Equal(t, "February run", updated.Remarks)
}

func TestPayrollService_Process_CreatesSlips(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	run, err := f.svc.CreatePayroll(ctx, twoEmployeeRun())
	require.NoError(t, err)

	resp, err := f.svc.ProcessPayroll(ctx, run.ID)

	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusProcessed, resp.Payroll.Status)
	require.NotNil(t, resp.Payroll.ProcessedDate)
	assert.Equal(t, "2024-02-29", *resp.Payroll.ProcessedDate)
	assert.Equal(t, 2, resp.SlipsCreated)
	assert.Equal(t, 0, resp.SlipsUpdated)
	require.Len(t, resp.SalarySlips, 2)

	for i, slip := range resp.SalarySlips {
		item := resp.Payroll.Items[i]
		assert.Equal(t, run.ID, slip.PayrollProcessingID)
		assert.Equal(t, item.EmployeeID, slip.EmployeeID)
		assert.True(t, item.NetSalary.Equal(slip.NetSalary))
		_, err := uuid.Parse(slip.SlipNumber)
		assert.NoError(t, err)
	}
}

func TestPayrollService_Process_TwiceRefreshesSlips(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	run, err := f.svc.CreatePayroll(ctx, twoEmployeeRun())
	require.NoError(t, err)
	first, err := f.svc.ProcessPayroll(ctx, run.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{
		ID: run.ID,
		Items: []payroll.PayrollItemRequest{
			{EmployeeID: 1, EmployeeName: "Ani", TotalEarnings: dec("11000000")},
			{EmployeeID: 2, EmployeeName: "Budi", TotalEarnings: dec("8000000"), TotalDeductions: dec("400000")},
		},
	})
	require.NoError(t, err)

	second, err := f.svc.ProcessPayroll(ctx, run.ID)

	require.NoError(t, err)
	assert.Equal(t, 0, second.SlipsCreated)
	assert.Equal(t, 2, second.SlipsUpdated)
	assert.Equal(t, first.SalarySlips[0].ID, second.SalarySlips[0].ID)
	assert.Equal(t, first.SalarySlips[0].SlipNumber, second.SalarySlips[0].SlipNumber)
	assert.True(t, dec("11000000").Equal(second.SalarySlips[0].NetSalary))

	all, err := f.slips.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPayrollService_Process_NotFoundLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	run, err := f.svc.CreatePayroll(ctx, twoEmployeeRun())
	require.NoError(t, err)

	_, err = f.svc.ProcessPayroll(ctx, run.ID+1)

	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
	stored, err := f.runs.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusDraft, stored.Status)
	slips, _ := f.slips.List(ctx)
	assert.Empty(t, slips)
}

func TestPayrollService_Process_RemovesSlipsOfDroppedEmployees(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	run, err := f.svc.CreatePayroll(ctx, twoEmployeeRun())
	require.NoError(t, err)
	_, err = f.svc.ProcessPayroll(ctx, run.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{
		ID: run.ID,
		Items: []payroll.PayrollItemRequest{
			{EmployeeID: 1, EmployeeName: "Ani", TotalEarnings: dec("10000000")},
		},
	})
	require.NoError(t, err)

	resp, err := f.svc.ProcessPayroll(ctx, run.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.SlipsUpdated)
	assert.Equal(t, 1, resp.SlipsRemoved)
	all, err := f.slips.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(1), all[0].EmployeeID)
}

func TestPayrollService_Process_RejectsClosedRuns(t *testing.T) {
	for _, status := range []payroll.PayrollStatus{payroll.PayrollStatusPaid, payroll.PayrollStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			ctx := context.Background()
			f := newFixture()
			req := twoEmployeeRun()
			req.Status = string(status)
			run, err := f.svc.CreatePayroll(ctx, req)
			require.NoError(t, err)

			_, err = f.svc.ProcessPayroll(ctx, run.ID)

			assert.ErrorIs(t, err, payroll.ErrPayrollNotProcessable)
			stored, err := f.runs.GetByID(ctx, run.ID)
			require.NoError(t, err)
			assert.Equal(t, status, stored.Status)
			assert.Nil(t, stored.ProcessedDate)
			slips, _ := f.slips.List(ctx)
			assert.Empty(t, slips)
		})
	}
}

func TestPayrollService_Delete_RemovesSlips(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	run, err := f.svc.CreatePayroll(ctx, twoEmployeeRun())
	require.NoError(t, err)
	other, err := f.svc.CreatePayroll(ctx, payroll.CreatePayrollRequest{
		Month: 3,
		Year:  2024,
		Items: []payroll.PayrollItemRequest{{EmployeeID: 1, EmployeeName: "Ani", TotalEarnings: dec("100")}},
	})
	require.NoError(t, err)
	_, err = f.svc.ProcessPayroll(ctx, run.ID)
	require.NoError(t, err)
	_, err = f.svc.ProcessPayroll(ctx, other.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeletePayroll(ctx, run.ID))

	slips, err := f.slips.List(ctx)
	require.NoError(t, err)
	require.Len(t, slips, 1)
	assert.Equal(t, other.ID, slips[0].PayrollProcessingID)
}

func TestPayrollService_Delete_NotFoundKeepsSlips(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	run, err := f.svc.CreatePayroll(ctx, twoEmployeeRun())
	require.NoError(t, err)
	_, err = f.svc.ProcessPayroll(ctx, run.ID)
	require.NoError(t, err)

	err = f.svc.DeletePayroll(ctx, run.ID+1)

	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
	slips, _ := f.slips.List(ctx)
	assert.Len(t, slips, 2)
}

func TestPayrollService_List_FiltersByPeriod(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	for _, month := range []int{1, 2, 2} {
		req := twoEmployeeRun()
		req.Month = month
		_, err := f.svc.CreatePayroll(ctx, req)
		require.NoError(t, err)
	}

	resp, err := f.svc.ListPayrolls(ctx, payroll.PayrollFilter{Month: ptr(2), Year: ptr(2024)})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Meta.TotalCount)
	assert.Equal(t, 4, resp.Stats.TotalEmployees)
	assert.True(t, dec("33700000").Equal(resp.Stats.TotalNetSalary))

	_, err = f.svc.ListPayrolls(ctx, payroll.PayrollFilter{Month: ptr(13)})
	assert.Error(t, err)
}

// ===== SLIP TESTS =====

func TestPayrollService_Slip_NetSalaryEnforced(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	slip, err := f.svc.CreateSalarySlip(ctx, payroll.CreateSalarySlipRequest{
		EmployeeID:      5,
		EmployeeName:    "Citra",
		Month:           3,
		Year:            2024,
		TotalEarnings:   dec("5000"),
		TotalDeductions: dec("700"),
		LeaveDeductions: dec("300"),
	})
	require.NoError(t, err)
	assert.True(t, dec("4000").Equal(slip.NetSalary))
	assert.NotEmpty(t, slip.SlipNumber)

	updated, err := f.svc.UpdateSalarySlip(ctx, payroll.UpdateSalarySlipRequest{ID: slip.ID, LeaveDeductions: ptr(dec("0"))})
	require.NoError(t, err)
	assert.True(t, dec("4300").Equal(updated.NetSalary))

	resp, err := f.svc.ListSalarySlips(ctx, payroll.SalarySlipFilter{Search: ptr(slip.SlipNumber[:8])})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Meta.TotalCount)
}

func TestPayrollService_Slip_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.UpdateSalarySlip(ctx, payroll.UpdateSalarySlipRequest{ID: 3})
	assert.ErrorIs(t, err, payroll.ErrSalarySlipNotFound)
	assert.ErrorIs(t, f.svc.DeleteSalarySlip(ctx, 3), payroll.ErrSalarySlipNotFound)
}

// ===== STRUCTURE TESTS =====

func TestPayrollService_Structure_BalancesDerived(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.svc.CreateSalaryStructure(ctx, payroll.CreateSalaryStructureRequest{
		EmployeeID:    1,
		EmployeeName:  "Ani",
		EffectiveFrom: "2024-01-01",
		StructureItems: []payroll.StructureItemRequest{
			{ComponentName: "Basic", ComponentType: "Earning", TotalAllocated: dec("9000000"), Used: dec("3000000")},
			{ComponentName: "Tax", ComponentType: "Deduction", TotalAllocated: dec("450000")},
		},
	})
	require.NoError(t, err)
	assert.True(t, dec("6000000").Equal(created.StructureItems[0].Balance))
	assert.True(t, dec("450000").Equal(created.StructureItems[1].Balance))

	updated, err := f.svc.UpdateSalaryStructure(ctx, payroll.UpdateSalaryStructureRequest{ID: created.ID, IsActive: ptr("N")})
	require.NoError(t, err)
	assert.Len(t, updated.StructureItems, 2)

	resp, err := f.svc.ListSalaryStructures(ctx, payroll.SalaryStructureFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stats.ActiveStructures)
	assert.True(t, dec("9000000").Equal(resp.Stats.TotalEarnings))
	assert.True(t, dec("450000").Equal(resp.Stats.TotalDeductions))

	require.NoError(t, f.svc.DeleteSalaryStructure(ctx, created.ID))
	_, err = f.svc.GetSalaryStructure(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrSalaryStructureNotFound)
}
