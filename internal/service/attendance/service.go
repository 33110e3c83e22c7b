package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	fileService    file.FileService
	location       *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
	location *time.Location,
) attendance.AttendanceService {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		fileService:    fileService,
		location:       location,
		now:            time.Now,
	}
}

// RecordAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	if _, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	now := s.now().UTC()
	eventTime := req.EventTime(now).UTC()

	var photoURL *string
	if req.File != nil && req.FileHeader != nil {
		url, err := s.fileService.UploadAttendancePhoto(ctx, employeeID, eventTime.In(s.location), req.File, req.FileHeader.Filename)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload attendance photo: %w", err)
		}
		photoURL = &url
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Status:     *req.AttendanceStatus,
		Location: attendance.GeoPoint{
			Latitude:  *req.Location.Latitude,
			Longitude: *req.Location.Longitude,
		},
		LocationName: strings.TrimSpace(req.LocationName),
		PhotoURL:     photoURL,
		Time:         eventTime,
		CreatedAt:    now,
	})
	if err != nil {
		if photoURL != nil {
			if delErr := s.fileService.DeletePhoto(ctx, *photoURL); delErr != nil {
				slog.Warn("attendance photo left without record", "employee_id", employeeID, "photo_url", *photoURL, "error", delErr)
			}
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.ToResponse(created, s.location), nil
}

// ListEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEmployeeAttendance(ctx context.Context, employeeID string) (attendance.EmployeeAttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.attendanceRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec, s.location))
	}

	return attendance.EmployeeAttendanceResponse{
		EmployeeID:   emp.EmployeeID,
		Name:         emp.Name,
		MobileNumber: emp.MobileNumber,
		Attendance:   responses,
	}, nil
}

// GetMonthCalendar implements attendance.AttendanceService.
// An unknown employee yields a month of "No record" days, not an error.
func (s *AttendanceServiceImpl) GetMonthCalendar(ctx context.Context, req attendance.MonthCalendarRequest) (attendance.MonthCalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthCalendarResponse{}, err
	}

	records, err := s.attendanceRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MonthCalendarResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	days, err := attendance.MonthCalendar(req.Year, req.Month, records, s.location)
	if err != nil {
		return attendance.MonthCalendarResponse{}, err
	}
	if req.MergeMissing {
		days = attendance.MergeMissing(days)
	}

	return attendance.MonthCalendarResponse{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
		Days:       days,
	}, nil
}
