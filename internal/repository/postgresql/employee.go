package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, employee_id, name, mobile_number, alternate_mobile, email, branch, designation,
	gender, date_of_birth, joining_date, salary, address, approval_status, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var gender *string
	var status string
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.Name,
		&e.MobileNumber,
		&e.AlternateMobile,
		&e.Email,
		&e.Branch,
		&e.Designation,
		&gender,
		&e.DateOfBirth,
		&e.JoiningDate,
		&e.Salary,
		&e.Address,
		&status,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if gender != nil {
		g := employee.Gender(*gender)
		e.Gender = &g
	}
	e.ApprovalStatus = approval.Status(status)
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var gender *string
	if newEmployee.Gender != nil {
		g := string(*newEmployee.Gender)
		gender = &g
	}
	status := newEmployee.ApprovalStatus
	if status == "" {
		status = approval.Initial()
	}

	query := `
		INSERT INTO employees (
			id, employee_id, name, mobile_number, alternate_mobile, email, branch, designation,
			gender, date_of_birth, joining_date, salary, address, approval_status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, NOW(), NOW()
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newRowID(),
		newEmployee.EmployeeID,
		newEmployee.Name,
		newEmployee.MobileNumber,
		newEmployee.AlternateMobile,
		newEmployee.Email,
		newEmployee.Branch,
		newEmployee.Designation,
		gender,
		newEmployee.DateOfBirth,
		newEmployee.JoiningDate,
		newEmployee.Salary,
		newEmployee.Address,
		string(status),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, database.Unavailable("create employee", err)
	}
	return created, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, database.Unavailable("get employee", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE conditions
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR employee_id ILIKE $%d OR mobile_number ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("approval_status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, database.Unavailable("count employees", err)
	}

	// Main query with pagination
	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, database.Unavailable("list employees", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0, filter.Limit)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, database.Unavailable("scan employee", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, database.Unavailable("list employees", err)
	}

	return employees, total, nil
}

// UpdateApprovalStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateApprovalStatus(ctx context.Context, employeeID string, status approval.Status) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET approval_status = $2, updated_at = NOW()
		WHERE employee_id = $1
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeID, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, database.Unavailable("update employee status", err)
	}
	return e, nil
}

// CountCallLogs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountCallLogs(ctx context.Context, employeeID string) (int64, error) {
	return r.count(ctx, "call_logs", employeeID)
}

// CountMessages implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountMessages(ctx context.Context, employeeID string) (int64, error) {
	return r.count(ctx, "messages", employeeID)
}

// count runs COUNT(*) on one of the fixed child tables.
func (r *employeeRepositoryImpl) count(ctx context.Context, table string, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE employee_id = $1", table)
	if err := q.QueryRow(ctx, query, employeeID).Scan(&total); err != nil {
		return 0, database.Unavailable("count "+table, err)
	}
	return total, nil
}

// ListCallLogs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListCallLogs(ctx context.Context, employeeID string) ([]employee.CallLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type, name, phone_number, duration, date_time, timestamp
		FROM call_logs
		WHERE employee_id = $1
		ORDER BY date_time DESC, id
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, database.Unavailable("list call logs", err)
	}
	defer rows.Close()

	logs := []employee.CallLog{}
	for rows.Next() {
		var l employee.CallLog
		if err := rows.Scan(&l.ID, &l.Type, &l.Name, &l.PhoneNumber, &l.Duration, &l.DateTime, &l.Timestamp); err != nil {
			return nil, database.Unavailable("scan call log", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Unavailable("list call logs", err)
	}
	return logs, nil
}

// AddCallLogs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AddCallLogs(ctx context.Context, employeeID string, logs []employee.CallLog) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		if err := r.lockEmployee(txCtx, employeeID); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, l := range logs {
			id := l.ID
			if id == "" {
				id = newRowID()
			}
			batch.Queue(`
				INSERT INTO call_logs (id, employee_id, type, name, phone_number, duration, date_time, timestamp)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, id, employeeID, l.Type, l.Name, l.PhoneNumber, l.Duration, l.DateTime, timestampOrNow(l.Timestamp))
		}
		if err := tx.SendBatch(txCtx, batch).Close(); err != nil {
			return database.Unavailable("insert call logs", err)
		}
		return nil
	})
}

// DeleteCallLog implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteCallLog(ctx context.Context, employeeID, callLogID string) error {
	if !isRowID(callLogID) {
		return employee.ErrCallLogNotFound
	}
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM call_logs WHERE employee_id = $1 AND id = $2`, employeeID, callLogID)
	if err != nil {
		return database.Unavailable("delete call log", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrCallLogNotFound
	}
	return nil
}

// DeleteAllCallLogs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteAllCallLogs(ctx context.Context, employeeID string) (int64, error) {
	return r.deleteAll(ctx, "call_logs", employeeID)
}

// ListMessages implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListMessages(ctx context.Context, employeeID string) ([]employee.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type, body, name, address, service_center, date
		FROM messages
		WHERE employee_id = $1
		ORDER BY date DESC, id
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, database.Unavailable("list messages", err)
	}
	defer rows.Close()

	msgs := []employee.Message{}
	for rows.Next() {
		var m employee.Message
		if err := rows.Scan(&m.ID, &m.Type, &m.Body, &m.Name, &m.Address, &m.ServiceCenter, &m.Date); err != nil {
			return nil, database.Unavailable("scan message", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Unavailable("list messages", err)
	}
	return msgs, nil
}

// AddMessages implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AddMessages(ctx context.Context, employeeID string, msgs []employee.Message) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		if err := r.lockEmployee(txCtx, employeeID); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, m := range msgs {
			id := m.ID
			if id == "" {
				id = newRowID()
			}
			batch.Queue(`
				INSERT INTO messages (id, employee_id, type, body, name, address, service_center, date)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, id, employeeID, m.Type, m.Body, m.Name, m.Address, m.ServiceCenter, m.Date)
		}
		if err := tx.SendBatch(txCtx, batch).Close(); err != nil {
			return database.Unavailable("insert messages", err)
		}
		return nil
	})
}

// DeleteMessage implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteMessage(ctx context.Context, employeeID, messageID string) error {
	if !isRowID(messageID) {
		return employee.ErrMessageNotFound
	}
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM messages WHERE employee_id = $1 AND id = $2`, employeeID, messageID)
	if err != nil {
		return database.Unavailable("delete message", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrMessageNotFound
	}
	return nil
}

// DeleteAllMessages implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteAllMessages(ctx context.Context, employeeID string) (int64, error) {
	return r.deleteAll(ctx, "messages", employeeID)
}

// deleteAll clears one of the fixed child tables for an existing employee.
func (r *employeeRepositoryImpl) deleteAll(ctx context.Context, table string, employeeID string) (int64, error) {
	var deleted int64
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		if err := r.lockEmployee(txCtx, employeeID); err != nil {
			return err
		}

		commandTag, err := tx.Exec(txCtx, fmt.Sprintf("DELETE FROM %s WHERE employee_id = $1", table), employeeID)
		if err != nil {
			return database.Unavailable("delete "+table, err)
		}
		deleted = commandTag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// lockEmployee fails with ErrEmployeeNotFound when the employee is missing and
// otherwise holds the row until the surrounding transaction ends.
func (r *employeeRepositoryImpl) lockEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `SELECT id FROM employees WHERE employee_id = $1 FOR UPDATE`, employeeID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return database.Unavailable("lock employee", err)
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func timestampOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
