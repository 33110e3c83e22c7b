package attendance

// Label is the display status of a calendar day.
type Label string

const (
	LabelPresent Label = "Present"
	LabelHalfDay Label = "Half Day"
	LabelLeave   Label = "Leave"
	LabelAbsent  Label = "Absent"

	// LabelNoRecord marks a day without any attendance event. It is kept
	// apart from LabelAbsent, which means a record exists with no flag set.
	LabelNoRecord Label = "No record"
)

// DeriveStatus maps a flag triple to exactly one label. When several flags
// are set, isPresent wins over isHalfDay, which wins over isLeave.
func DeriveStatus(flags StatusFlags) Label {
	switch {
	case flags.IsPresent:
		return LabelPresent
	case flags.IsHalfDay:
		return LabelHalfDay
	case flags.IsLeave:
		return LabelLeave
	default:
		return LabelAbsent
	}
}
