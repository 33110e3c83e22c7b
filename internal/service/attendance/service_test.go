package attendance

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	records  []attendance.Attendance
	failWith error
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if r.failWith != nil {
		return attendance.Attendance{}, r.failWith
	}
	a.ID = "att-" + a.EmployeeID
	r.records = append(r.records, a)
	return a, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []attendance.Attendance
	for _, a := range r.records {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeEmployeeRepo only answers lookups; any other call panics.
type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	e, ok := r.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeFileService struct {
	uploaded []string
	deleted  []string
}

func (f *fakeFileService) UploadAttendancePhoto(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string) (string, error) {
	url := "/uploads/attendance/" + date.Format("2006-01-02") + "/" + employeeID + ".jpg"
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeFileService) DeletePhoto(ctx context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

type nopFile struct {
	*strings.Reader
}

func (nopFile) Close() error { return nil }

func newTestService(repo *fakeAttendanceRepo, files *fakeFileService) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: repo,
		employeeRepo: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"EMP-1": {EmployeeID: "EMP-1", Name: "Rina", MobileNumber: "081234567890"},
		}},
		fileService: files,
		location:    time.UTC,
		now:         func() time.Time { return time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC) },
	}
}

func coords(lat, lon float64) *attendance.LocationInput {
	return &attendance.LocationInput{Latitude: &lat, Longitude: &lon}
}

func validRequest() attendance.CreateAttendanceRequest {
	return attendance.CreateAttendanceRequest{
		EmployeeID:       "EMP-1",
		AttendanceStatus: &attendance.StatusFlags{IsPresent: true},
		Location:         coords(-6.2, 106.8),
		LocationName:     "Head Office",
	}
}

func TestRecordAttendance(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	files := &fakeFileService{}
	svc := newTestService(repo, files)

	req := validRequest()
	req.File = nopFile{strings.NewReader("jpeg bytes")}
	req.FileHeader = &multipart.FileHeader{Filename: "selfie.jpg", Size: 10}

	resp, err := svc.RecordAttendance(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, attendance.LabelPresent, resp.Status)
	assert.Equal(t, "2024-03-05T09:30:00Z", resp.Time)
	require.NotNil(t, resp.PhotoURL)
	assert.Equal(t, "/uploads/attendance/2024-03-05/EMP-1.jpg", *resp.PhotoURL)
	assert.Len(t, repo.records, 1)
}

func TestRecordAttendance_StoreFailureRemovesPhoto(t *testing.T) {
	repo := &fakeAttendanceRepo{failWith: database.Unavailable("insert attendance", errors.New("connection refused"))}
	files := &fakeFileService{}
	svc := newTestService(repo, files)

	req := validRequest()
	req.File = nopFile{strings.NewReader("jpeg bytes")}
	req.FileHeader = &multipart.FileHeader{Filename: "selfie.jpg", Size: 10}

	_, err := svc.RecordAttendance(context.Background(), req)
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
	require.Len(t, files.uploaded, 1)
	assert.Equal(t, files.uploaded, files.deleted)
}

func TestRecordAttendance_ExplicitTime(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, &fakeFileService{})

	req := validRequest()
	ts := "2024-03-04T08:00:00+07:00"
	req.Time = &ts

	resp, err := svc.RecordAttendance(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04T01:00:00Z", resp.Time)
}

func TestRecordAttendance_Invalid(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, &fakeFileService{})

	req := validRequest()
	req.Location = coords(91, -181)
	req.LocationName = ""
	req.FileHeader = &multipart.FileHeader{Filename: "doc.pdf"}

	_, err := svc.RecordAttendance(context.Background(), req)
	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	fields := ve.ToMap()
	assert.Contains(t, fields, "latitude")
	assert.Contains(t, fields, "longitude")
	assert.Contains(t, fields, "location_name")
	assert.Contains(t, fields, "photo")
	assert.Empty(t, repo.records)
}

func TestRecordAttendance_UnknownEmployee(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, &fakeFileService{})

	req := validRequest()
	req.EmployeeID = "EMP-404"
	_, err := svc.RecordAttendance(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployeeAttendance(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "a", EmployeeID: "EMP-1", Status: attendance.StatusFlags{IsLeave: true}, Time: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "b", EmployeeID: "EMP-2", Time: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
	}}
	svc := newTestService(repo, &fakeFileService{})

	resp, err := svc.ListEmployeeAttendance(context.Background(), "EMP-1")
	require.NoError(t, err)
	assert.Equal(t, "Rina", resp.Name)
	require.Len(t, resp.Attendance, 1)
	assert.Equal(t, attendance.LabelLeave, resp.Attendance[0].Status)

	_, err = svc.ListEmployeeAttendance(context.Background(), "EMP-404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetMonthCalendar(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "EMP-1", Status: attendance.StatusFlags{IsPresent: true}, Time: time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)},
	}}
	svc := newTestService(repo, &fakeFileService{})
	ctx := context.Background()

	resp, err := svc.GetMonthCalendar(ctx, attendance.MonthCalendarRequest{EmployeeID: "EMP-1", Year: 2024, Month: 2})
	require.NoError(t, err)
	require.Len(t, resp.Days, 29)
	assert.Equal(t, attendance.LabelPresent, resp.Days[28].Status)
	assert.Equal(t, attendance.LabelNoRecord, resp.Days[0].Status)

	resp, err = svc.GetMonthCalendar(ctx, attendance.MonthCalendarRequest{EmployeeID: "EMP-1", Year: 2024, Month: 2, MergeMissing: true})
	require.NoError(t, err)
	assert.Equal(t, attendance.LabelAbsent, resp.Days[0].Status)

	// Unknown employee gives an empty month
	resp, err = svc.GetMonthCalendar(ctx, attendance.MonthCalendarRequest{EmployeeID: "EMP-404", Year: 2023, Month: 2})
	require.NoError(t, err)
	require.Len(t, resp.Days, 28)
	for _, d := range resp.Days {
		assert.Equal(t, attendance.LabelNoRecord, d.Status)
	}
}

func TestGetMonthCalendar_Errors(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, &fakeFileService{})

	_, err := svc.GetMonthCalendar(context.Background(), attendance.MonthCalendarRequest{EmployeeID: "EMP-1", Year: 2024, Month: 13})
	var ve validator.ValidationErrors
	assert.ErrorAs(t, err, &ve)

	repo.failWith = database.Unavailable("list attendance", errors.New("timeout"))
	_, err = svc.GetMonthCalendar(context.Background(), attendance.MonthCalendarRequest{EmployeeID: "EMP-1", Year: 2024, Month: 3})
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}
