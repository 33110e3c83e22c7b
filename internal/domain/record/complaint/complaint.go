package complaint

import (
	"context"
	"errors"
	"time"
)

var ErrComplaintNotFound = errors.New("complaint not found")

// Complaint is a grievance submitted from the mobile client.
type Complaint struct {
	ID          string
	EmployeeID  string
	Title       string
	From        string
	To          string
	Description string
	Timestamp   time.Time
}

type ComplaintResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Title       string `json:"title"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

func ToResponse(c Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		Title:       c.Title,
		From:        c.From,
		To:          c.To,
		Description: c.Description,
		Timestamp:   c.Timestamp.Format(time.RFC3339),
	}
}

type ComplaintRepository interface {
	// GetByEmployeeID returns complaints newest first.
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Complaint, error)
}
