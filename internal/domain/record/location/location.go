package location

import (
	"context"
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

// Ping is a free-text location report pushed by a device.
type Ping struct {
	ID         string
	EmployeeID string
	Location   string
	Timestamp  time.Time
}

type CreatePingRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=64"`
	Location   string `json:"location" validate:"required,max=500"`
}

func (r *CreatePingRequest) Validate() error {
	return validator.Struct(r)
}

type PingResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Location   string `json:"location"`
	Timestamp  string `json:"timestamp"`
}

func ToResponse(p Ping) PingResponse {
	return PingResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Location:   p.Location,
		Timestamp:  p.Timestamp.Format(time.RFC3339),
	}
}

type LocationRepository interface {
	Create(ctx context.Context, ping Ping) (Ping, error)
	// List returns every ping, newest first.
	List(ctx context.Context) ([]Ping, error)
}
