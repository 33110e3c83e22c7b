package leave

import (
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason" validate:"required,max=1000"`
	LeaveType  string `json:"leave_type" validate:"required,oneof=Sick Vacation Personal Other"`
	To         string `json:"to" validate:"required,max=255"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	// Employee ID
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Dates
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return validator.Merge(errs, validator.Struct(r))
	}
	return validator.Struct(r)
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

type LeaveRequestResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Reason         string `json:"reason"`
	LeaveType      string `json:"leave_type"`
	To             string `json:"to"`
	ApprovalStatus string `json:"approval_status"`
	Timestamp      string `json:"timestamp"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		StartDate:      r.StartDate.Format(dateLayout),
		EndDate:        r.EndDate.Format(dateLayout),
		Reason:         r.Reason,
		LeaveType:      string(r.LeaveType),
		To:             r.To,
		ApprovalStatus: r.ApprovalStatus.String(),
		Timestamp:      r.Timestamp.Format(time.RFC3339),
	}
}
