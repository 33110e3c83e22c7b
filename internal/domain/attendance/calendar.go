package attendance

import (
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

const (
	dateLayout = "2006-01-02"
	minYear    = 1
	maxYear    = 9999
)

// DayEntry is one day of a month calendar.
type DayEntry struct {
	Date     string  `json:"date"`
	Status   Label   `json:"status"`
	Time     *string `json:"time,omitempty"`
	PhotoURI *string `json:"photo_uri,omitempty"`
	Location *string `json:"location,omitempty"`
}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries
// not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month (1-12) in year.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func validateMonth(year, month int) error {
	var errs validator.ValidationErrors
	if year < minYear || year > maxYear {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1 and 9999",
		})
	}
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthCalendar produces one entry per day of the given month. Each day takes
// the first record, in input order, whose event time falls on that day in
// loc; days without a record are LabelNoRecord. The result depends only on
// the arguments.
func MonthCalendar(year, month int, records []Attendance, loc *time.Location) ([]DayEntry, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}

	dayCount := DaysInMonth(year, month)

	// firstByDay[d] is the index of the first record on day d, or -1.
	firstByDay := make([]int, dayCount+1)
	for d := range firstByDay {
		firstByDay[d] = -1
	}
	for i, rec := range records {
		at := rec.EventTime()
		if at.IsZero() {
			continue
		}
		at = at.In(loc)
		if at.Year() != year || int(at.Month()) != month {
			continue
		}
		if firstByDay[at.Day()] == -1 {
			firstByDay[at.Day()] = i
		}
	}

	entries := make([]DayEntry, 0, dayCount)
	for day := 1; day <= dayCount; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		entry := DayEntry{
			Date:   date.Format(dateLayout),
			Status: LabelNoRecord,
		}

		if idx := firstByDay[day]; idx >= 0 {
			rec := records[idx]
			entry.Status = DeriveStatus(rec.Status)
			at := rec.EventTime().In(loc).Format(time.RFC3339)
			entry.Time = &at
			if rec.PhotoURL != nil && *rec.PhotoURL != "" {
				photo := *rec.PhotoURL
				entry.PhotoURI = &photo
			}
			if rec.LocationName != "" {
				name := rec.LocationName
				entry.Location = &name
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// MergeMissing relabels LabelNoRecord days as LabelAbsent for views that do
// not distinguish the two. The input slice is left untouched.
func MergeMissing(entries []DayEntry) []DayEntry {
	merged := make([]DayEntry, len(entries))
	copy(merged, entries)
	for i := range merged {
		if merged[i].Status == LabelNoRecord {
			merged[i].Status = LabelAbsent
		}
	}
	return merged
}
