package record

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emptrack/emptrack-backend-go/internal/domain/record/complaint"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/location"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/salary"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

type fakeComplaintRepo struct {
	complaints []complaint.Complaint
}

func (r *fakeComplaintRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]complaint.Complaint, error) {
	var out []complaint.Complaint
	for _, c := range r.complaints {
		if c.EmployeeID == employeeID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeSalaryRepo struct {
	salaries map[string]salary.Salary
}

func (r *fakeSalaryRepo) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Salary, error) {
	s, ok := r.salaries[employeeID]
	if !ok {
		return salary.Salary{}, salary.ErrSalaryNotFound
	}
	return s, nil
}

type fakeLocationRepo struct {
	pings []location.Ping
}

func (r *fakeLocationRepo) Create(ctx context.Context, p location.Ping) (location.Ping, error) {
	p.ID = "ping-1"
	r.pings = append(r.pings, p)
	return p, nil
}

func (r *fakeLocationRepo) List(ctx context.Context) ([]location.Ping, error) {
	return r.pings, nil
}

func newTestRecordService() (*recordServiceImpl, *fakeLocationRepo) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	locations := &fakeLocationRepo{}
	return &recordServiceImpl{
		complaintRepo: &fakeComplaintRepo{complaints: []complaint.Complaint{
			{ID: "c1", EmployeeID: "EMP-1", Title: "Late salary", From: "Rina", To: "HR", Description: "Not paid", Timestamp: ts},
			{ID: "c2", EmployeeID: "EMP-2", Title: "Noise", Timestamp: ts},
		}},
		salaryRepo: &fakeSalaryRepo{salaries: map[string]salary.Salary{
			"EMP-1": {ID: "s1", EmployeeID: "EMP-1", BasicSalary: 5000000, NumberOfLeaves: 2, Timestamp: ts},
		}},
		locationRepo: locations,
		now:          func() time.Time { return ts },
	}, locations
}

func TestListComplaints(t *testing.T) {
	svc, _ := newTestRecordService()

	got, err := svc.ListComplaints(context.Background(), "EMP-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Late salary", got[0].Title)

	got, err = svc.ListComplaints(context.Background(), "EMP-404")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestGetSalary(t *testing.T) {
	svc, _ := newTestRecordService()

	got, err := svc.GetSalary(context.Background(), "EMP-1")
	require.NoError(t, err)
	assert.Equal(t, 5000000.0, got.BasicSalary)
	assert.Equal(t, 2, got.NumberOfLeaves)

	_, err = svc.GetSalary(context.Background(), "EMP-404")
	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
}

func TestLocationPings(t *testing.T) {
	svc, repo := newTestRecordService()

	created, err := svc.CreateLocationPing(context.Background(), location.CreatePingRequest{EmployeeID: " EMP-1 ", Location: "Jl. Sudirman"})
	require.NoError(t, err)
	assert.Equal(t, "EMP-1", created.EmployeeID)
	assert.Equal(t, "2024-03-01T10:00:00Z", created.Timestamp)

	_, err = svc.CreateLocationPing(context.Background(), location.CreatePingRequest{})
	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.ToMap(), "employee_id")
	assert.Contains(t, ve.ToMap(), "location")
	assert.Len(t, repo.pings, 1)

	list, err := svc.ListLocationPings(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
