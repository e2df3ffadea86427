package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/candidate"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/hiringstage"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, jobposting.ErrJobPostingNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, hiringstage.ErrHiringStageNotFound):
		NotFound(w, "Hiring stage not found")
	case errors.Is(err, leave.ErrLeaveApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrSalarySlipNotFound):
		NotFound(w, "Salary slip not found")
	case errors.Is(err, payroll.ErrSalaryStructureNotFound):
		NotFound(w, "Salary structure not found")

	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already recorded for this employee and date")
	case errors.Is(err, payroll.ErrPayrollNotProcessable):
		Conflict(w, "Only draft or processed payrolls can be processed")

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		RequestTimeout(w, "Request cancelled")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
