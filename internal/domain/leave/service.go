package leave

import (
	"context"
)

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	// ApplyStatus validates status before touching the store, then persists
	// it as the only changed field.
	ApplyStatus(ctx context.Context, employeeID, leaveID, status string) (LeaveRequestResponse, error)
}
