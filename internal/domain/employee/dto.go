package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// MaxPage bounds the listing offset, (page-1)*limit, well inside int range.
const MaxPage = 100000

type CreateEmployeeRequest struct {
	EmployeeID      string   `json:"employee_id" validate:"required,max=64"`
	Name            string   `json:"name" validate:"required,max=255"`
	MobileNumber    string   `json:"mobile_number" validate:"required"`
	AlternateMobile *string  `json:"alternate_mobile,omitempty"`
	Email           *string  `json:"email,omitempty" validate:"omitempty,email"`
	Branch          *string  `json:"branch,omitempty" validate:"omitempty,max=255"`
	Designation     *string  `json:"designation,omitempty" validate:"omitempty,max=255"`
	Gender          *string  `json:"gender,omitempty"`
	DateOfBirth     *string  `json:"date_of_birth,omitempty"`
	JoiningDate     *string  `json:"joining_date,omitempty"`
	Salary          *float64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Address         *string  `json:"address,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Phone numbers
	if !validator.IsEmpty(r.MobileNumber) && !validator.IsValidMobileNumber(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_number",
			Message: ErrInvalidPhoneNumber.Error(),
		})
	}
	if r.AlternateMobile != nil && *r.AlternateMobile != "" && !validator.IsValidMobileNumber(*r.AlternateMobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "alternate_mobile",
			Message: ErrInvalidPhoneNumber.Error(),
		})
	}

	// Gender
	if r.Gender != nil {
		if !validator.IsInSlice(*r.Gender, []string{string(Male), string(Female), string(Other)}) {
			errs = append(errs, validator.ValidationError{
				Field:   "gender",
				Message: ErrInvalidGender.Error(),
			})
		}
	}

	// Dates
	if r.DateOfBirth != nil {
		dob, ok := validator.IsValidDate(*r.DateOfBirth)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		} else if dob.After(time.Now()) {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: ErrFutureDateNotAllowed.Error(),
			})
		}
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return validator.Merge(validator.Struct(r), errs)
	}
	return validator.Struct(r)
}

// ToEntity builds a new Pending onboarding record. Validate must pass first.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	e := Employee{
		EmployeeID:      strings.TrimSpace(r.EmployeeID),
		Name:            strings.TrimSpace(r.Name),
		MobileNumber:    r.MobileNumber,
		AlternateMobile: r.AlternateMobile,
		Email:           r.Email,
		Branch:          r.Branch,
		Designation:     r.Designation,
		Salary:          r.Salary,
		Address:         r.Address,
		ApprovalStatus:  approval.Initial(),
	}
	if r.Gender != nil {
		g := Gender(*r.Gender)
		e.Gender = &g
	}
	if r.DateOfBirth != nil {
		if d, ok := validator.IsValidDate(*r.DateOfBirth); ok {
			e.DateOfBirth = &d
		}
	}
	if r.JoiningDate != nil {
		if d, ok := validator.IsValidDate(*r.JoiningDate); ok {
			e.JoiningDate = &d
		}
	}
	return e
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}
	if f.Page > MaxPage {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: fmt.Sprintf("page must not exceed %d", MaxPage),
		})
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	// Status validation
	if f.Status != nil {
		if _, err := approval.Parse(*f.Status); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: approval.ErrInvalidStatus.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (f *CallLogFilter) Validate() error {
	switch f.Sort {
	case SortNone, SortAscending, SortDescending:
		return nil
	}
	return validator.ValidationErrors{{
		Field:   "sort",
		Message: ErrInvalidCallLogSorting.Error(),
	}}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type EmployeeResponse struct {
	ID              string   `json:"id"`
	EmployeeID      string   `json:"employee_id"`
	Name            string   `json:"name"`
	MobileNumber    string   `json:"mobile_number"`
	AlternateMobile *string  `json:"alternate_mobile,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Branch          *string  `json:"branch,omitempty"`
	Designation     *string  `json:"designation,omitempty"`
	Gender          *string  `json:"gender,omitempty"`
	DateOfBirth     *string  `json:"date_of_birth,omitempty"`
	JoiningDate     *string  `json:"joining_date,omitempty"`
	Salary          *float64 `json:"salary,omitempty"`
	Address         *string  `json:"address,omitempty"`
	ApprovalStatus  string   `json:"approval_status"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}

type SummaryResponse struct {
	EmployeeID    string `json:"employee_id"`
	Name          string `json:"name"`
	TotalCalls    int64  `json:"total_calls"`
	TotalMessages int64  `json:"total_messages"`
}

type CallLogInput struct {
	Type        string `json:"type" validate:"required,max=32"`
	Name        string `json:"name" validate:"max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,max=32"`
	Duration    int    `json:"duration" validate:"gte=0"`
	DateTime    string `json:"date_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type AddCallLogsRequest struct {
	EmployeeID string         `json:"-"`
	CallLogs   []CallLogInput `json:"call_logs" validate:"required,min=1,max=1000,dive"`
}

func (r *AddCallLogsRequest) Validate() error {
	return validator.Struct(r)
}

type MessageInput struct {
	Type          string `json:"type" validate:"required,max=32"`
	Body          string `json:"body"`
	Name          string `json:"name" validate:"max=255"`
	Address       string `json:"address" validate:"required,max=255"`
	ServiceCenter string `json:"service_center" validate:"max=255"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type AddMessagesRequest struct {
	EmployeeID string         `json:"-"`
	Messages   []MessageInput `json:"messages" validate:"required,min=1,max=1000,dive"`
}

func (r *AddMessagesRequest) Validate() error {
	return validator.Struct(r)
}

type CallLogResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Duration    int    `json:"duration"`
	DateTime    string `json:"date_time"`
	Timestamp   string `json:"timestamp"`
}

type MessageResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Body          string `json:"body"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ServiceCenter string `json:"service_center"`
	Date          string `json:"date"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		Name:            e.Name,
		MobileNumber:    e.MobileNumber,
		AlternateMobile: e.AlternateMobile,
		Email:           e.Email,
		Branch:          e.Branch,
		Designation:     e.Designation,
		Salary:          e.Salary,
		Address:         e.Address,
		ApprovalStatus:  e.ApprovalStatus.String(),
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       e.UpdatedAt.Format(time.RFC3339),
	}
	if e.Gender != nil {
		g := string(*e.Gender)
		resp.Gender = &g
	}
	if e.DateOfBirth != nil {
		d := e.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &d
	}
	if e.JoiningDate != nil {
		d := e.JoiningDate.Format(dateLayout)
		resp.JoiningDate = &d
	}
	return resp
}

func ToCallLogResponse(l CallLog) CallLogResponse {
	return CallLogResponse{
		ID:          l.ID,
		Type:        l.Type,
		Name:        l.Name,
		PhoneNumber: l.PhoneNumber,
		Duration:    l.Duration,
		DateTime:    l.DateTime.Format(time.RFC3339),
		Timestamp:   l.Timestamp.Format(time.RFC3339),
	}
}

func ToMessageResponse(m Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		Type:          m.Type,
		Body:          m.Body,
		Name:          m.Name,
		Address:       m.Address,
		ServiceCenter: m.ServiceCenter,
		Date:          m.Date.Format(time.RFC3339),
	}
}
