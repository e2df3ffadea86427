package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type RequestService struct {
	leave.LeaveApplicationRepository
	latency latency.Simulator
}

func NewRequestService(applicationRepo leave.LeaveApplicationRepository, sim latency.Simulator) *RequestService {
	return &RequestService{
		LeaveApplicationRepository: applicationRepo,
		latency:                    sim,
	}
}

func (r *RequestService) GetLeaveApplication(ctx context.Context, id int64) (leave.LeaveApplication, error) {
	if err := r.latency.WaitFetch(ctx); err != nil {
		return leave.LeaveApplication{}, err
	}
	return r.LeaveApplicationRepository.GetByID(ctx, id)
}

func (r *RequestService) CreateLeaveApplication(ctx context.Context, req leave.CreateLeaveApplicationRequest) (leave.LeaveApplication, error) {
	if err := r.latency.WaitMutation(ctx); err != nil {
		return leave.LeaveApplication{}, err
	}

	status := leave.ApplicationStatus(req.Status)
	if status == "" {
		status = leave.StatusPending
	}

	application := leave.LeaveApplication{
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		LeaveTypeID:   req.LeaveTypeID,
		LeaveTypeName: req.LeaveTypeName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IsHalfDay:     req.IsHalfDay,
		Reason:        req.Reason,
		Status:        status,
		AppliedDate:   req.AppliedDate,
	}
	application.Recompute()

	created, err := r.LeaveApplicationRepository.Create(ctx, application)
	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	slog.InfoContext(ctx, "Leave application created",
		"leave_application_id", created.ID,
		"employee_id", created.EmployeeID,
		"total_days", created.TotalDays.String(),
	)
	return created, nil
}

func (r *RequestService) UpdateLeaveApplication(ctx context.Context, req leave.UpdateLeaveApplicationRequest) (leave.LeaveApplication, error) {
	if err := r.latency.WaitMutation(ctx); err != nil {
		return leave.LeaveApplication{}, err
	}

	current, err := r.LeaveApplicationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}

	utils.Patch(&current.EmployeeID, req.EmployeeID)
	utils.Patch(&current.EmployeeName, req.EmployeeName)
	utils.Patch(&current.LeaveTypeID, req.LeaveTypeID)
	utils.Patch(&current.LeaveTypeName, req.LeaveTypeName)
	utils.Patch(&current.StartDate, req.StartDate)
	utils.Patch(&current.EndDate, req.EndDate)
	utils.Patch(&current.IsHalfDay, req.IsHalfDay)
	utils.Patch(&current.Reason, req.Reason)
	if req.Status != nil {
		current.Status = leave.ApplicationStatus(*req.Status)
	}
	utils.Patch(&current.AppliedDate, req.AppliedDate)
	current.Recompute()

	updated, err := r.LeaveApplicationRepository.Update(ctx, current)
	if err != nil {
		return leave.LeaveApplication{}, err
	}

	slog.InfoContext(ctx, "Leave application updated", "leave_application_id", updated.ID, "status", updated.Status)
	return updated, nil
}

func (r *RequestService) DeleteLeaveApplication(ctx context.Context, id int64) error {
	if err := r.latency.WaitMutation(ctx); err != nil {
		return err
	}
	return r.LeaveApplicationRepository.Delete(ctx, id)
}

func (r *RequestService) ListLeaveApplications(ctx context.Context, filter leave.LeaveApplicationFilter) (leave.ListLeaveApplicationResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveApplicationResponse{}, err
	}
	if err := r.latency.WaitList(ctx); err != nil {
		return leave.ListLeaveApplicationResponse{}, err
	}

	all, err := r.LeaveApplicationRepository.List(ctx)
	if err != nil {
		return leave.ListLeaveApplicationResponse{}, fmt.Errorf("failed to list leave applications: %w", err)
	}

	filtered := FilterApplications(all, filter)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	return leave.ListLeaveApplicationResponse{
		LeaveApplications: page.Items,
		Meta:              page.Meta,
		Stats:             ApplicationStats(filtered),
	}, nil
}

func FilterApplications(all []leave.LeaveApplication, filter leave.LeaveApplicationFilter) []leave.LeaveApplication {
	return query.Filter(all,
		query.Search(utils.Deref(filter.Search),
			func(l leave.LeaveApplication) string { return l.EmployeeName },
			func(l leave.LeaveApplication) string { return l.LeaveTypeName },
			func(l leave.LeaveApplication) string { return l.Reason },
		),
		query.Equals(filter.EmployeeID, func(l leave.LeaveApplication) int64 { return l.EmployeeID }),
		query.Equals(filter.LeaveTypeID, func(l leave.LeaveApplication) int64 { return l.LeaveTypeID }),
		query.Equals(filter.Status, func(l leave.LeaveApplication) string { return string(l.Status) }),
		query.DateRange(filter.StartDate, filter.EndDate, func(l leave.LeaveApplication) string { return l.StartDate }),
	)
}

func ApplicationStats(records []leave.LeaveApplication) leave.LeaveApplicationStats {
	approved := query.Filter(records, func(l leave.LeaveApplication) bool { return l.Status == leave.StatusApproved })
	return leave.LeaveApplicationStats{
		TotalApplications: len(records),
		ByStatus:          query.GroupCount(records, func(l leave.LeaveApplication) string { return string(l.Status) }),
		ByLeaveType:       query.GroupCount(records, func(l leave.LeaveApplication) string { return l.LeaveTypeName }),
		PendingCount:      query.Count(records, func(l leave.LeaveApplication) bool { return l.Status == leave.StatusPending }),
		ApprovedDays:      query.SumDecimal(approved, func(l leave.LeaveApplication) decimal.Decimal { return l.TotalDays }),
	}
}
