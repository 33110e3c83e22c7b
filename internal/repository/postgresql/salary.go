package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/emptrack/emptrack-backend-go/internal/domain/record/salary"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

// GetByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, basic_salary, number_of_leaves, timestamp
		FROM salaries
		WHERE employee_id = $1
		ORDER BY timestamp DESC
		LIMIT 1
	`
	var s salary.Salary
	err := q.QueryRow(ctx, query, employeeID).Scan(&s.ID, &s.EmployeeID, &s.BasicSalary, &s.NumberOfLeaves, &s.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, database.Unavailable("get salary", err)
	}
	return s, nil
}
