package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		flags StatusFlags
		want  Label
	}{
		{"none set", StatusFlags{}, LabelAbsent},
		{"present only", StatusFlags{IsPresent: true}, LabelPresent},
		{"leave only", StatusFlags{IsLeave: true}, LabelLeave},
		{"half day only", StatusFlags{IsHalfDay: true}, LabelHalfDay},
		{"present and leave", StatusFlags{IsPresent: true, IsLeave: true}, LabelPresent},
		{"present and half day", StatusFlags{IsPresent: true, IsHalfDay: true}, LabelPresent},
		{"half day and leave", StatusFlags{IsLeave: true, IsHalfDay: true}, LabelHalfDay},
		{"all set", StatusFlags{IsPresent: true, IsLeave: true, IsHalfDay: true}, LabelPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.flags))
		})
	}
}

func TestDeriveStatus_NeverNoRecord(t *testing.T) {
	for _, p := range []bool{false, true} {
		for _, l := range []bool{false, true} {
			for _, h := range []bool{false, true} {
				got := DeriveStatus(StatusFlags{IsPresent: p, IsLeave: l, IsHalfDay: h})
				assert.NotEqual(t, LabelNoRecord, got)
			}
		}
	}
}
