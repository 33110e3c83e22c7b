package postgresql

import (
	"context"

	"github.com/emptrack/emptrack-backend-go/internal/domain/record/complaint"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type complaintRepositoryImpl struct {
	db *database.DB
}

func NewComplaintRepository(db *database.DB) complaint.ComplaintRepository {
	return &complaintRepositoryImpl{db: db}
}

// GetByEmployeeID implements complaint.ComplaintRepository.
func (r *complaintRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]complaint.Complaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, title, sender, recipient, description, timestamp
		FROM complaints
		WHERE employee_id = $1
		ORDER BY timestamp DESC, id DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, database.Unavailable("list complaints", err)
	}
	defer rows.Close()

	complaints := []complaint.Complaint{}
	for rows.Next() {
		var c complaint.Complaint
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Title, &c.From, &c.To, &c.Description, &c.Timestamp); err != nil {
			return nil, database.Unavailable("scan complaint", err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Unavailable("list complaints", err)
	}
	return complaints, nil
}
