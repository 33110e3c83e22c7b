package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/domain/dashboard"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/salary"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	salaryRepo     salary.SalaryRepository
	location       *time.Location
	now            func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	salaryRepo salary.SalaryRepository,
	location *time.Location,
) dashboard.DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		salaryRepo:     salaryRepo,
		location:       location,
		now:            time.Now,
	}
}

// GetEmployeeDashboard returns combined dashboard data using parallel goroutines
// 1 lookup + 4 goroutines, each with 1 store query
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, employeeID string) (dashboard.EmployeeDashboardResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	today := s.now().In(s.location)
	year, month := today.Year(), int(today.Month())

	result := dashboard.EmployeeDashboardResponse{
		Employee:         employee.ToResponse(emp),
		RecentAttendance: []attendance.AttendanceResponse{},
	}

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Call total
	g.Go(func() error {
		total, err := s.employeeRepo.CountCallLogs(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to count call logs: %w", err)
		}
		result.TotalCalls = total
		return nil
	})

	// 2. Message total
	g.Go(func() error {
		total, err := s.employeeRepo.CountMessages(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to count messages: %w", err)
		}
		result.TotalMessages = total
		return nil
	})

	// 3. Month summary + latest check-ins (1 query: all events of the employee)
	g.Go(func() error {
		records, err := s.attendanceRepo.GetByEmployeeID(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		days, err := attendance.MonthCalendar(year, month, records, s.location)
		if err != nil {
			return err
		}
		summary := dashboard.MonthAttendanceSummary{Month: fmt.Sprintf("%04d-%02d", year, month)}
		for _, day := range days {
			summary.Add(day.Status)
		}
		result.MonthAttendance = summary

		// records are oldest first
		for i := len(records) - 1; i >= 0 && len(result.RecentAttendance) < dashboard.RecentAttendanceLimit; i-- {
			result.RecentAttendance = append(result.RecentAttendance, attendance.ToResponse(records[i], s.location))
		}
		return nil
	})

	// 4. Latest salary
	g.Go(func() error {
		sal, err := s.salaryRepo.GetByEmployeeID(gCtx, employeeID)
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get salary: %w", err)
		}
		resp := salary.ToResponse(sal)
		result.Salary = &resp
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	return result, nil
}
