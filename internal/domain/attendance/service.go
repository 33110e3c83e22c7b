package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordAttendance stores a check-in event, uploading the optional photo
	RecordAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// ListEmployeeAttendance returns the employee header with all raw events
	ListEmployeeAttendance(ctx context.Context, employeeID string) (EmployeeAttendanceResponse, error)

	// GetMonthCalendar reconciles the employee's events into a full month
	GetMonthCalendar(ctx context.Context, req MonthCalendarRequest) (MonthCalendarResponse, error)
}
