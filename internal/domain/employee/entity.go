package employee

import (
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
)

// Employee is the onboarding record of a monitored employee. EmployeeID is
// the business key; every other record references it.
type Employee struct {
	ID              string
	EmployeeID      string
	Name            string
	MobileNumber    string
	AlternateMobile *string
	Email           *string
	Branch          *string
	Designation     *string
	Gender          *Gender
	DateOfBirth     *time.Time
	JoiningDate     *time.Time
	Salary          *float64
	Address         *string
	ApprovalStatus  approval.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// CallLog is one entry of the phone's call history uploaded by the device.
type CallLog struct {
	ID          string
	Type        string // Incoming, Outgoing, Missed, Rejected...
	Name        string
	PhoneNumber string
	Duration    int // seconds
	DateTime    time.Time
	Timestamp   time.Time
}

// Message is one SMS uploaded by the device.
type Message struct {
	ID            string
	Type          string
	Body          string
	Name          string
	Address       string
	ServiceCenter string
	Date          time.Time
}
