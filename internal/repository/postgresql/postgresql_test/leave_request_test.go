package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/leave"
	"github.com/emptrack/emptrack-backend-go/internal/repository/postgresql"
)

func TestLeaveRequestRepository_StatusUpdate(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewLeaveRequestRepository(setup.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: "EMP-001",
		StartDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Reason:     "Fever",
		LeaveType:  leave.LeaveTypeSick,
		To:         "HR",
	})
	require.NoError(t, err)
	assert.Equal(t, approval.StatusPending, created.ApprovalStatus)

	updated, err := repo.UpdateApprovalStatus(ctx, "EMP-001", created.ID, approval.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, updated.ApprovalStatus)
	assert.Equal(t, created.Reason, updated.Reason)
	assert.Equal(t, created.LeaveType, updated.LeaveType)
	assert.True(t, created.StartDate.Equal(updated.StartDate))

	// wrong owner
	_, err = repo.UpdateApprovalStatus(ctx, "EMP-002", created.ID, approval.StatusRejected)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	_, err = repo.GetByID(ctx, "EMP-001", "missing")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	got, err := repo.GetByID(ctx, "EMP-001", created.ID)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, got.ApprovalStatus)

	list, err := repo.GetByEmployeeID(ctx, "EMP-001")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
