package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/leave"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	id, employee_id, start_date, end_date, reason, leave_type, recipient,
	approval_status, timestamp, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	var leaveType, status string
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&leaveType,
		&lr.To,
		&status,
		&lr.Timestamp,
		&lr.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	lr.LeaveType = leave.LeaveType(leaveType)
	lr.ApprovalStatus = approval.Status(status)
	return lr, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	status := request.ApprovalStatus
	if status == "" {
		status = approval.Initial()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, start_date, end_date, reason, leave_type, recipient,
			approval_status, timestamp, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		newRowID(),
		request.EmployeeID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		string(request.LeaveType),
		request.To,
		string(status),
	))
	if err != nil {
		return leave.LeaveRequest{}, database.Unavailable("create leave request", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, employeeID, id string) (leave.LeaveRequest, error) {
	if !isRowID(id) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1 AND employee_id = $2`
	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, database.Unavailable("get leave request", err)
	}
	return lr, nil
}

// GetByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY timestamp DESC, id DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, database.Unavailable("list leave requests", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, database.Unavailable("scan leave request", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Unavailable("list leave requests", err)
	}
	return requests, nil
}

// UpdateApprovalStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateApprovalStatus(ctx context.Context, employeeID, id string, status approval.Status) (leave.LeaveRequest, error) {
	if !isRowID(id) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET approval_status = $3, updated_at = NOW()
		WHERE id = $1 AND employee_id = $2
		RETURNING ` + leaveRequestColumns

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, employeeID, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, database.Unavailable("update leave status", err)
	}
	return lr, nil
}
