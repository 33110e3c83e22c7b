package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/domain/record/complaint"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/location"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/salary"
)

// RecordService serves the read-mostly records uploaded by devices.
type RecordService interface {
	// Complaint operations
	ListComplaints(ctx context.Context, employeeID string) ([]complaint.ComplaintResponse, error)

	// Salary operations
	GetSalary(ctx context.Context, employeeID string) (salary.SalaryResponse, error)

	// Location operations
	CreateLocationPing(ctx context.Context, req location.CreatePingRequest) (location.PingResponse, error)
	ListLocationPings(ctx context.Context) ([]location.PingResponse, error)
}

type recordServiceImpl struct {
	complaintRepo complaint.ComplaintRepository
	salaryRepo    salary.SalaryRepository
	locationRepo  location.LocationRepository
	now           func() time.Time
}

func NewRecordService(
	complaintRepo complaint.ComplaintRepository,
	salaryRepo salary.SalaryRepository,
	locationRepo location.LocationRepository,
) RecordService {
	return &recordServiceImpl{
		complaintRepo: complaintRepo,
		salaryRepo:    salaryRepo,
		locationRepo:  locationRepo,
		now:           time.Now,
	}
}

// ==================== COMPLAINT OPERATIONS ====================

func (s *recordServiceImpl) ListComplaints(ctx context.Context, employeeID string) ([]complaint.ComplaintResponse, error) {
	complaints, err := s.complaintRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	responses := make([]complaint.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		responses = append(responses, complaint.ToResponse(c))
	}
	return responses, nil
}

// ==================== SALARY OPERATIONS ====================

func (s *recordServiceImpl) GetSalary(ctx context.Context, employeeID string) (salary.SalaryResponse, error) {
	sal, err := s.salaryRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary: %w", err)
	}
	return salary.ToResponse(sal), nil
}

// ==================== LOCATION OPERATIONS ====================

func (s *recordServiceImpl) CreateLocationPing(ctx context.Context, req location.CreatePingRequest) (location.PingResponse, error) {
	if err := req.Validate(); err != nil {
		return location.PingResponse{}, err
	}

	created, err := s.locationRepo.Create(ctx, location.Ping{
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		Location:   req.Location,
		Timestamp:  s.now().UTC(),
	})
	if err != nil {
		return location.PingResponse{}, fmt.Errorf("failed to create location ping: %w", err)
	}
	return location.ToResponse(created), nil
}

func (s *recordServiceImpl) ListLocationPings(ctx context.Context) ([]location.PingResponse, error) {
	pings, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list location pings: %w", err)
	}

	responses := make([]location.PingResponse, 0, len(pings))
	for _, p := range pings {
		responses = append(responses, location.ToResponse(p))
	}
	return responses, nil
}
