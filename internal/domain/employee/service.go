package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee registers a new onboarding record in Pending state
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single onboarding record by employee id
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// ListEmployees lists employees with search, status filter and pagination
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// ApplyStatus approves, rejects or resets an onboarding record
	ApplyStatus(ctx context.Context, employeeID, status string) (EmployeeResponse, error)

	// GetSummary counts the call logs and messages of an employee
	GetSummary(ctx context.Context, employeeID string) (SummaryResponse, error)

	ListCallLogs(ctx context.Context, employeeID string, filter CallLogFilter) ([]CallLogResponse, error)
	AddCallLogs(ctx context.Context, req AddCallLogsRequest) (int, error)
	DeleteCallLog(ctx context.Context, employeeID, callLogID string) error
	ClearCallLogs(ctx context.Context, employeeID string) (int64, error)

	ListMessages(ctx context.Context, employeeID string, filter MessageFilter) ([]MessageResponse, error)
	AddMessages(ctx context.Context, req AddMessagesRequest) (int, error)
	DeleteMessage(ctx context.Context, employeeID, messageID string) error
	ClearMessages(ctx context.Context, employeeID string) (int64, error)
}
