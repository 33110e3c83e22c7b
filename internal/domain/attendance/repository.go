package attendance

import (
	"context"
)

// AttendanceRepository is the record store view of attendance events.
type AttendanceRepository interface {
	// Create stores a new attendance event
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeID returns every event of one employee ordered by event
	// time, oldest first. An unknown employee yields an empty slice.
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Attendance, error)
}
