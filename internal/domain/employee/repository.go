package employee

import (
	"context"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	// UpdateApprovalStatus writes only approval_status. Returns
	// ErrEmployeeNotFound without side effects when nothing matched.
	UpdateApprovalStatus(ctx context.Context, employeeID string, status approval.Status) (Employee, error)

	CountCallLogs(ctx context.Context, employeeID string) (int64, error)
	ListCallLogs(ctx context.Context, employeeID string) ([]CallLog, error)
	AddCallLogs(ctx context.Context, employeeID string, logs []CallLog) error
	DeleteCallLog(ctx context.Context, employeeID, callLogID string) error
	DeleteAllCallLogs(ctx context.Context, employeeID string) (int64, error)

	CountMessages(ctx context.Context, employeeID string) (int64, error)
	ListMessages(ctx context.Context, employeeID string) ([]Message, error)
	AddMessages(ctx context.Context, employeeID string, msgs []Message) error
	DeleteMessage(ctx context.Context, employeeID, messageID string) error
	DeleteAllMessages(ctx context.Context, employeeID string) (int64, error)
}
