package attendance

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

const maxPhotoSize = 10 << 20 // 10MB

// LocationInput uses pointers so a missing coordinate is not read as 0.
type LocationInput struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

type CreateAttendanceRequest struct {
	EmployeeID       string                `json:"employee_id" validate:"required"`
	AttendanceStatus *StatusFlags          `json:"attendance_status" validate:"required"`
	Location         *LocationInput        `json:"location" validate:"required"`
	LocationName     string                `json:"location_name" validate:"required,max=255"`
	Time             *string               `json:"time,omitempty"` // RFC3339, defaults to now
	File             multipart.File        `json:"-"`
	FileHeader       *multipart.FileHeader `json:"-"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Time != nil {
		if _, ok := validator.IsValidDateTime(*r.Time); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time",
				Message: "time must be an ISO8601 timestamp",
			})
		}
	}

	if r.FileHeader != nil {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: ErrInvalidPhotoType.Error(),
			})
		} else if r.FileHeader.Size > maxPhotoSize {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: ErrPhotoTooLarge.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return validator.Merge(validator.Struct(r), errs)
	}
	return validator.Struct(r)
}

// EventTime returns the requested event time or now when unset.
func (r *CreateAttendanceRequest) EventTime(now time.Time) time.Time {
	if r.Time == nil {
		return now
	}
	if t, ok := validator.IsValidDateTime(*r.Time); ok {
		return t
	}
	return now
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AttendanceResponse struct {
	ID               string           `json:"id"`
	EmployeeID       string           `json:"employee_id"`
	AttendanceStatus StatusFlags      `json:"attendance_status"`
	Status           Label            `json:"status"`
	Location         LocationResponse `json:"location"`
	LocationName     string           `json:"location_name"`
	PhotoURL         *string          `json:"photo_url,omitempty"`
	Time             string           `json:"time"`
	CreatedAt        string           `json:"created_at"`
}

type EmployeeAttendanceResponse struct {
	EmployeeID   string               `json:"employee_id"`
	Name         string               `json:"name"`
	MobileNumber string               `json:"mobile_number"`
	Attendance   []AttendanceResponse `json:"attendance"`
}

type MonthCalendarRequest struct {
	EmployeeID   string
	Year         int
	Month        int
	MergeMissing bool
}

func (r *MonthCalendarRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if err := validateMonth(r.Year, r.Month); err != nil {
		return validator.Merge(errs, err)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthCalendarResponse struct {
	EmployeeID string     `json:"employee_id"`
	Year       int        `json:"year"`
	Month      int        `json:"month"`
	Days       []DayEntry `json:"days"`
}

// ToResponse converts an entity into its JSON representation.
func ToResponse(a Attendance, loc *time.Location) AttendanceResponse {
	if loc == nil {
		loc = time.UTC
	}
	return AttendanceResponse{
		ID:               a.ID,
		EmployeeID:       a.EmployeeID,
		AttendanceStatus: a.Status,
		Status:           DeriveStatus(a.Status),
		Location: LocationResponse{
			Latitude:  a.Location.Latitude,
			Longitude: a.Location.Longitude,
		},
		LocationName: a.LocationName,
		PhotoURL:     a.PhotoURL,
		Time:         a.EventTime().In(loc).Format(time.RFC3339),
		CreatedAt:    a.CreatedAt.In(loc).Format(time.RFC3339),
	}
}
