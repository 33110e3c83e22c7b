package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/repository/postgresql"
)

func TestAttendanceRepository_CreateAndListOrdered(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	day := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC)
	nested := day.Add(-48 * time.Hour)

	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID:   "EMP-001",
		Status:       attendance.StatusFlags{IsPresent: true},
		Location:     attendance.GeoPoint{Latitude: -6.2, Longitude: 106.8},
		LocationName: "Head office",
		Time:         day,
	})
	require.NoError(t, err)

	// legacy client: event time nested in the location
	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID:   "EMP-001",
		Status:       attendance.StatusFlags{IsLeave: true},
		Location:     attendance.GeoPoint{Latitude: -6.2, Longitude: 106.8, Time: &nested},
		LocationName: "Home",
	})
	require.NoError(t, err)

	records, err := repo.GetByEmployeeID(ctx, "EMP-001")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].Time.IsZero())
	require.NotNil(t, records[0].Location.Time)
	assert.True(t, nested.Equal(records[0].EventTime()))
	assert.True(t, records[0].Status.IsLeave)

	assert.True(t, day.Equal(records[1].Time))
	assert.Equal(t, "Head office", records[1].LocationName)

	none, err := repo.GetByEmployeeID(ctx, "EMP-404")
	require.NoError(t, err)
	assert.Empty(t, none)
}
