package leave

import (
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
)

type LeaveType string

const (
	LeaveTypeSick     LeaveType = "Sick"
	LeaveTypeVacation LeaveType = "Vacation"
	LeaveTypePersonal LeaveType = "Personal"
	LeaveTypeOther    LeaveType = "Other"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time

	Reason    string
	LeaveType LeaveType
	To        string // recipient of the request

	ApprovalStatus approval.Status

	Timestamp time.Time
	UpdatedAt time.Time
}
