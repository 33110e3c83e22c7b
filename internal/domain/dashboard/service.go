package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetEmployeeDashboard loads the employee record, message and call
	// totals, the current month summary, recent check-ins and salary in
	// parallel.
	GetEmployeeDashboard(ctx context.Context, employeeID string) (EmployeeDashboardResponse, error)
}
