package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

func decodeCheckIn(t *testing.T, data string) CreateAttendanceRequest {
	t.Helper()
	var req CreateAttendanceRequest
	require.NoError(t, json.Unmarshal([]byte(data), &req))
	req.EmployeeID = "EMP-1"
	return req
}

func TestCreateAttendanceRequest_RequiresLocationAndStatus(t *testing.T) {
	req := decodeCheckIn(t, `{"location_name":"HQ"}`)

	err := req.Validate()
	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	fields := ve.ToMap()
	assert.Contains(t, fields, "location")
	assert.Contains(t, fields, "attendance_status")
}

func TestCreateAttendanceRequest_RequiresBothCoordinates(t *testing.T) {
	req := decodeCheckIn(t, `{"attendance_status":{"isPresent":true},"location":{"latitude":-6.2},"location_name":"HQ"}`)

	err := req.Validate()
	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	fields := ve.ToMap()
	assert.Contains(t, fields, "longitude")
	assert.NotContains(t, fields, "latitude")
}

func TestCreateAttendanceRequest_ExplicitZeroCoordinates(t *testing.T) {
	req := decodeCheckIn(t, `{"attendance_status":{},"location":{"latitude":0,"longitude":0},"location_name":"Null Island"}`)

	assert.NoError(t, req.Validate())
}
