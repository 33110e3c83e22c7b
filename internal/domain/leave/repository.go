package leave

import (
	"context"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
)

// LeaveRequestRepository - interface for leave requests
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	// GetByID looks a request up by its owner and its own id.
	GetByID(ctx context.Context, employeeID, id string) (LeaveRequest, error)
	// GetByEmployeeID returns requests newest first.
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// UpdateApprovalStatus writes only the approval status and returns the
	// stored request. Returns ErrLeaveRequestNotFound when nothing matched.
	UpdateApprovalStatus(ctx context.Context, employeeID, id string, status approval.Status) (LeaveRequest, error)
}
