package dashboard

import (
	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/salary"
)

// RecentAttendanceLimit caps the latest events shown on the dashboard.
const RecentAttendanceLimit = 5

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the combined response for one employee
type EmployeeDashboardResponse struct {
	Employee         employee.EmployeeResponse       `json:"employee"`
	TotalCalls       int64                           `json:"total_calls"`
	TotalMessages    int64                           `json:"total_messages"`
	MonthAttendance  MonthAttendanceSummary          `json:"month_attendance"`
	RecentAttendance []attendance.AttendanceResponse `json:"recent_attendance"`
	Salary           *salary.SalaryResponse          `json:"salary"` // nil when no salary is on file
}

// ========== MONTH ATTENDANCE ==========

// MonthAttendanceSummary counts calendar days per label for one month
type MonthAttendanceSummary struct {
	Month    string `json:"month"` // Format: "YYYY-MM"
	Present  int    `json:"present"`
	HalfDay  int    `json:"half_day"`
	Leave    int    `json:"leave"`
	Absent   int    `json:"absent"`
	NoRecord int    `json:"no_record"`
}

// Add counts one calendar day.
func (s *MonthAttendanceSummary) Add(label attendance.Label) {
	switch label {
	case attendance.LabelPresent:
		s.Present++
	case attendance.LabelHalfDay:
		s.HalfDay++
	case attendance.LabelLeave:
		s.Leave++
	case attendance.LabelAbsent:
		s.Absent++
	default:
		s.NoRecord++
	}
}
