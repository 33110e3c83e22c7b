package response

import (
	"errors"
	"net/http"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/domain/auth"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/domain/leave"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/complaint"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/salary"
	"github.com/emptrack/emptrack-backend-go/internal/domain/user"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/storage"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Approval status is validated before any lookup
	case errors.Is(err, approval.ErrInvalidStatus):
		ValidationError(w, map[string]string{"status": approval.ErrInvalidStatus.Error()})

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRegistrationClosed):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrCallLogNotFound):
		NotFound(w, "Call log not found")
	case errors.Is(err, employee.ErrMessageNotFound):
		NotFound(w, "Message not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")
	case errors.Is(err, attendance.ErrInvalidPhotoType), errors.Is(err, attendance.ErrPhotoTooLarge):
		ValidationError(w, map[string]string{"photo": err.Error()})
	case errors.Is(err, storage.ErrInvalidPath):
		BadRequest(w, "Invalid file path", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Records
	case errors.Is(err, complaint.ErrComplaintNotFound):
		NotFound(w, "Complaint not found")
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary details not found")

	// Record store
	case errors.Is(err, database.ErrStoreUnavailable):
		ServiceUnavailable(w, "Record store unavailable, try again later")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
