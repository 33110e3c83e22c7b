package mongodb_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/domain/leave"
	"github.com/emptrack/emptrack-backend-go/internal/domain/user"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
	"github.com/emptrack/emptrack-backend-go/internal/repository/mongodb"
)

// newTestMongo connects to TEST_MONGO_URI using a throwaway database that is
// dropped when the test ends.
func newTestMongo(t *testing.T) *database.MongoDB {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	db, err := database.NewMongoDB(uri, fmt.Sprintf("emptrack_test_%d", time.Now().UnixNano()))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, mongodb.EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close(context.Background())
	})
	return db
}

func TestEmployeeRepository_Lifecycle(t *testing.T) {
	db := newTestMongo(t)
	repo := mongodb.NewEmployeeRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, employee.Employee{EmployeeID: "EMP-001", Name: "Budi Santoso", MobileNumber: "0811"})
	require.NoError(t, err)
	assert.Equal(t, approval.StatusPending, created.ApprovalStatus)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP-001", Name: "Dup", MobileNumber: "0"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP-002", Name: "Ani", MobileNumber: "0822"})
	require.NoError(t, err)

	list, total, err := repo.List(ctx, employee.EmployeeFilter{Search: "BUDI", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "EMP-001", list[0].EmployeeID)

	updated, err := repo.UpdateApprovalStatus(ctx, "EMP-001", approval.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, updated.ApprovalStatus)
	assert.Equal(t, "Budi Santoso", updated.Name)

	_, err = repo.UpdateApprovalStatus(ctx, "EMP-404", approval.StatusApproved)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_EmbeddedCallLogs(t *testing.T) {
	db := newTestMongo(t)
	repo := mongodb.NewEmployeeRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, employee.Employee{EmployeeID: "EMP-001", Name: "Budi", MobileNumber: "0811"})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.AddCallLogs(ctx, "EMP-001", []employee.CallLog{
		{Type: "Incoming", Name: "Old", PhoneNumber: "1", Duration: 5, DateTime: now.Add(-time.Hour)},
		{Type: "Outgoing", Name: "New", PhoneNumber: "2", Duration: 9, DateTime: now},
	}))
	assert.ErrorIs(t, repo.AddCallLogs(ctx, "EMP-404", []employee.CallLog{{Type: "Incoming"}}), employee.ErrEmployeeNotFound)

	count, err := repo.CountCallLogs(ctx, "EMP-001")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	logs, err := repo.ListCallLogs(ctx, "EMP-001")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "New", logs[0].Name)

	require.NoError(t, repo.DeleteCallLog(ctx, "EMP-001", logs[0].ID))
	assert.ErrorIs(t, repo.DeleteCallLog(ctx, "EMP-001", logs[0].ID), employee.ErrCallLogNotFound)

	deleted, err := repo.DeleteAllCallLogs(ctx, "EMP-001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	// the header is untouched by child writes
	got, err := repo.GetByEmployeeID(ctx, "EMP-001")
	require.NoError(t, err)
	assert.Equal(t, "Budi", got.Name)
}

func TestAttendanceRepository_OrdersByEventTime(t *testing.T) {
	db := newTestMongo(t)
	repo := mongodb.NewAttendanceRepository(db)
	ctx := context.Background()

	later := time.Date(2024, 2, 12, 9, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP-001", Status: attendance.StatusFlags{IsPresent: true}, LocationName: "A", Time: later})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP-001", LocationName: "B", Location: attendance.GeoPoint{Time: &earlier}})
	require.NoError(t, err)

	records, err := repo.GetByEmployeeID(ctx, "EMP-001")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "B", records[0].LocationName)
	assert.Equal(t, "A", records[1].LocationName)
}

func TestLeaveRequestRepository_UpdateApprovalStatus(t *testing.T) {
	db := newTestMongo(t)
	repo := mongodb.NewLeaveRequestRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, leave.LeaveRequest{EmployeeID: "EMP-001", Reason: "Trip", LeaveType: leave.LeaveTypeVacation, To: "HR"})
	require.NoError(t, err)

	updated, err := repo.UpdateApprovalStatus(ctx, "EMP-001", created.ID, approval.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusRejected, updated.ApprovalStatus)
	assert.Equal(t, "Trip", updated.Reason)

	_, err = repo.UpdateApprovalStatus(ctx, "EMP-002", created.ID, approval.StatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestUserRepository_UniqueUsername(t *testing.T) {
	db := newTestMongo(t)
	repo := mongodb.NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, user.AdminUser{Username: "admin", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, user.AdminUser{Username: "admin", PasswordHash: "y"})
	assert.ErrorIs(t, err, user.ErrUsernameExists)

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
