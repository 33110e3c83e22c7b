package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, employee_id, is_present, is_leave, is_half_day, latitude, longitude,
	location_time, location_name, photo_url, time, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var eventTime *time.Time
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Status.IsPresent,
		&a.Status.IsLeave,
		&a.Status.IsHalfDay,
		&a.Location.Latitude,
		&a.Location.Longitude,
		&a.Location.Time,
		&a.LocationName,
		&a.PhotoURL,
		&eventTime,
		&a.CreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if eventTime != nil {
		a.Time = *eventTime
	}
	return a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var eventTime *time.Time
	if !newAttendance.Time.IsZero() {
		eventTime = &newAttendance.Time
	}

	query := `
		INSERT INTO attendance (
			id, employee_id, is_present, is_leave, is_half_day, latitude, longitude,
			location_time, location_name, photo_url, time, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newRowID(),
		newAttendance.EmployeeID,
		newAttendance.Status.IsPresent,
		newAttendance.Status.IsLeave,
		newAttendance.Status.IsHalfDay,
		newAttendance.Location.Latitude,
		newAttendance.Location.Longitude,
		newAttendance.Location.Time,
		newAttendance.LocationName,
		newAttendance.PhotoURL,
		eventTime,
	))
	if err != nil {
		return attendance.Attendance{}, database.Unavailable("create attendance", err)
	}
	return created, nil
}

// GetByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1
		ORDER BY COALESCE(time, location_time, created_at), created_at, id
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, database.Unavailable("list attendance", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, database.Unavailable("scan attendance", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Unavailable("list attendance", err)
	}
	return records, nil
}
