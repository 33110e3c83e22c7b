package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/repository/postgresql"
)

func createTestEmployee(t *testing.T, repo employee.EmployeeRepository, employeeID, name string) employee.Employee {
	t.Helper()
	e, err := repo.Create(context.Background(), employee.Employee{
		EmployeeID:     employeeID,
		Name:           name,
		MobileNumber:   "081234567890",
		ApprovalStatus: approval.StatusPending,
	})
	require.NoError(t, err)
	return e
}

func TestEmployeeRepository_CreateGetAndDuplicate(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	gender := employee.Female
	salary := 4500.5
	created, err := repo.Create(ctx, employee.Employee{
		EmployeeID:   "EMP-001",
		Name:         "Siti",
		MobileNumber: "081234567890",
		Gender:       &gender,
		Salary:       &salary,
	})
	require.NoError(t, err)
	assert.Equal(t, approval.StatusPending, created.ApprovalStatus)

	got, err := repo.GetByEmployeeID(ctx, "EMP-001")
	require.NoError(t, err)
	require.NotNil(t, got.Gender)
	assert.Equal(t, employee.Female, *got.Gender)
	require.NotNil(t, got.Salary)
	assert.InDelta(t, 4500.5, *got.Salary, 0.0001)
	assert.Nil(t, got.Email)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP-001", Name: "Other", MobileNumber: "0800"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = repo.GetByEmployeeID(ctx, "EMP-404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ListFiltersAndPaginates(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	createTestEmployee(t, repo, "EMP-001", "Budi Santoso")
	createTestEmployee(t, repo, "EMP-002", "Ani Wijaya")
	createTestEmployee(t, repo, "EMP-003", "Budiman")
	_, err := repo.UpdateApprovalStatus(ctx, "EMP-003", approval.StatusApproved)
	require.NoError(t, err)

	list, total, err := repo.List(ctx, employee.EmployeeFilter{Search: "budi", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, list, 2)

	approved := string(approval.StatusApproved)
	list, total, err = repo.List(ctx, employee.EmployeeFilter{Status: &approved, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "EMP-003", list[0].EmployeeID)

	list, total, err = repo.List(ctx, employee.EmployeeFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, list, 1)
}

func TestEmployeeRepository_UpdateApprovalStatusOnlyTouchesStatus(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	before := createTestEmployee(t, repo, "EMP-001", "Budi")

	after, err := repo.UpdateApprovalStatus(ctx, "EMP-001", approval.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusRejected, after.ApprovalStatus)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.MobileNumber, after.MobileNumber)
	assert.Equal(t, before.ID, after.ID)

	_, err = repo.UpdateApprovalStatus(ctx, "EMP-404", approval.StatusApproved)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_CallLogsAndMessages(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	createTestEmployee(t, repo, "EMP-001", "Budi")
	now := time.Now().UTC().Truncate(time.Second)

	err := repo.AddCallLogs(ctx, "EMP-001", []employee.CallLog{
		{ID: uuid.NewString(), Type: "Incoming", Name: "Ani", PhoneNumber: "0811", Duration: 30, DateTime: now},
		{ID: uuid.NewString(), Type: "Missed", Name: "Joko", PhoneNumber: "0822", Duration: 0, DateTime: now.Add(-time.Hour)},
	})
	require.NoError(t, err)

	err = repo.AddCallLogs(ctx, "EMP-404", []employee.CallLog{{Type: "Incoming", PhoneNumber: "0", DateTime: now}})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	logs, err := repo.ListCallLogs(ctx, "EMP-001")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "Ani", logs[0].Name)

	count, err := repo.CountCallLogs(ctx, "EMP-001")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, repo.DeleteCallLog(ctx, "EMP-001", logs[0].ID))
	assert.ErrorIs(t, repo.DeleteCallLog(ctx, "EMP-001", logs[0].ID), employee.ErrCallLogNotFound)
	assert.ErrorIs(t, repo.DeleteCallLog(ctx, "EMP-001", "missing"), employee.ErrCallLogNotFound)

	deleted, err := repo.DeleteAllCallLogs(ctx, "EMP-001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = repo.DeleteAllCallLogs(ctx, "EMP-404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	err = repo.AddMessages(ctx, "EMP-001", []employee.Message{
		{ID: uuid.NewString(), Type: "Inbox", Body: "Hello", Name: "Ani", Address: "0811", Date: now},
	})
	require.NoError(t, err)

	msgs, err := repo.ListMessages(ctx, "EMP-001")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hello", msgs[0].Body)

	count, err = repo.CountMessages(ctx, "EMP-001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.DeleteMessage(ctx, "EMP-001", msgs[0].ID))
	assert.ErrorIs(t, repo.DeleteMessage(ctx, "EMP-001", msgs[0].ID), employee.ErrMessageNotFound)

	deleted, err = repo.DeleteAllMessages(ctx, "EMP-001")
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}
