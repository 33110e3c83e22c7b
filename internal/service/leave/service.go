package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/leave"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	now func() time.Time
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		now:                    time.Now,
	}
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:     strings.TrimSpace(req.EmployeeID),
		StartDate:      startDate,
		EndDate:        endDate,
		Reason:         req.Reason,
		LeaveType:      leave.LeaveType(req.LeaveType),
		To:             req.To,
		ApprovalStatus: approval.Initial(),
		Timestamp:      s.now().UTC(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses, nil
}

// ApplyStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyStatus(ctx context.Context, employeeID, leaveID, status string) (leave.LeaveRequestResponse, error) {
	// Reject unknown statuses before any store access
	target, err := approval.Parse(status)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	current, err := s.LeaveRequestRepository.GetByID(ctx, employeeID, leaveID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	next, err := approval.Transition(current.ApprovalStatus, target)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := s.LeaveRequestRepository.UpdateApprovalStatus(ctx, employeeID, leaveID, next)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return leave.ToResponse(updated), nil
}
