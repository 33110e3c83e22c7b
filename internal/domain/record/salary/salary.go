package salary

import (
	"context"
	"errors"
	"time"
)

var ErrSalaryNotFound = errors.New("salary details not found")

type Salary struct {
	ID             string
	EmployeeID     string
	BasicSalary    float64
	NumberOfLeaves int
	Timestamp      time.Time
}

type SalaryResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	BasicSalary    float64 `json:"basic_salary"`
	NumberOfLeaves int     `json:"number_of_leaves"`
	Timestamp      string  `json:"timestamp"`
}

func ToResponse(s Salary) SalaryResponse {
	return SalaryResponse{
		ID:             s.ID,
		EmployeeID:     s.EmployeeID,
		BasicSalary:    s.BasicSalary,
		NumberOfLeaves: s.NumberOfLeaves,
		Timestamp:      s.Timestamp.Format(time.RFC3339),
	}
}

type SalaryRepository interface {
	// GetByEmployeeID returns the latest salary record or ErrSalaryNotFound.
	GetByEmployeeID(ctx context.Context, employeeID string) (Salary, error)
}
