package attendance

import (
	"time"
)

// StatusFlags is the raw attendance status recorded by the mobile client.
// The three flags are meant to be mutually exclusive but nothing enforces it;
// DeriveStatus resolves overlaps.
type StatusFlags struct {
	IsPresent bool `json:"isPresent"`
	IsLeave   bool `json:"isLeave"`
	IsHalfDay bool `json:"isHalfDay"`
}

// GeoPoint is where a check-in happened. Time is set by older clients that
// nest the event time inside the location.
type GeoPoint struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Time      *time.Time `json:"time,omitempty"`
}

// Attendance is a single attendance event. Records are immutable once created.
type Attendance struct {
	ID           string
	EmployeeID   string
	Status       StatusFlags
	Location     GeoPoint
	LocationName string
	PhotoURL     *string
	Time         time.Time
	CreatedAt    time.Time
}

// EventTime returns the time the event happened, falling back to the nested
// location time when the top-level time is unset.
func (a Attendance) EventTime() time.Time {
	if a.Time.IsZero() && a.Location.Time != nil {
		return *a.Location.Time
	}
	return a.Time
}
