package employee

import (
	"sort"
	"strings"
)

const CallTypeAll = "All"

type SortOrder string

const (
	SortNone       SortOrder = ""
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

type CallLogFilter struct {
	Search string
	Type   string
	Sort   SortOrder
}

type MessageFilter struct {
	Search string
}

type EmployeeFilter struct {
	Search string
	Status *string
	Page   int
	Limit  int
}

// FilterCallLogs keeps logs whose name (case-insensitive) or phone number
// contains the search term and whose type matches, then orders them by
// duration when requested. Input order is kept otherwise.
func FilterCallLogs(logs []CallLog, f CallLogFilter) []CallLog {
	search := strings.TrimSpace(f.Search)
	needle := strings.ToLower(search)

	out := make([]CallLog, 0, len(logs))
	for _, l := range logs {
		if f.Type != "" && f.Type != CallTypeAll && l.Type != f.Type {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Name), needle) &&
			!strings.Contains(l.PhoneNumber, search) {
			continue
		}
		out = append(out, l)
	}

	switch f.Sort {
	case SortAscending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Duration < out[j].Duration })
	case SortDescending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Duration > out[j].Duration })
	}
	return out
}

// FilterMessages keeps messages whose sender name, address, service center or
// body contains the search term, case-insensitively.
func FilterMessages(msgs []Message, f MessageFilter) []Message {
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if needle != "" && !containsAny(needle, m.Name, m.Address, m.ServiceCenter, m.Body) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
