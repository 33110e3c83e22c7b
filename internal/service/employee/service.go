package employee

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min((filter.Page)*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Employees:  responses,
	}, nil
}

// ApplyStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ApplyStatus(ctx context.Context, employeeID, status string) (employee.EmployeeResponse, error) {
	// Reject unknown statuses before any store access
	target, err := approval.Parse(status)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	next, err := approval.Transition(current.ApprovalStatus, target)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.UpdateApprovalStatus(ctx, employeeID, next)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee status: %w", err)
	}

	return employee.ToResponse(updated), nil
}

// GetSummary implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetSummary(ctx context.Context, employeeID string) (employee.SummaryResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.SummaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	totalCalls, err := s.employeeRepo.CountCallLogs(ctx, employeeID)
	if err != nil {
		return employee.SummaryResponse{}, fmt.Errorf("failed to count call logs: %w", err)
	}

	totalMessages, err := s.employeeRepo.CountMessages(ctx, employeeID)
	if err != nil {
		return employee.SummaryResponse{}, fmt.Errorf("failed to count messages: %w", err)
	}

	return employee.SummaryResponse{
		EmployeeID:    emp.EmployeeID,
		Name:          emp.Name,
		TotalCalls:    totalCalls,
		TotalMessages: totalMessages,
	}, nil
}

// ListCallLogs implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListCallLogs(ctx context.Context, employeeID string, filter employee.CallLogFilter) ([]employee.CallLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	// Unknown employee is a 404, not an empty list
	if _, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	logs, err := s.employeeRepo.ListCallLogs(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list call logs: %w", err)
	}

	filtered := employee.FilterCallLogs(logs, filter)
	responses := make([]employee.CallLogResponse, 0, len(filtered))
	for _, l := range filtered {
		responses = append(responses, employee.ToCallLogResponse(l))
	}
	return responses, nil
}

// AddCallLogs implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddCallLogs(ctx context.Context, req employee.AddCallLogsRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	now := s.now().UTC()
	logs := make([]employee.CallLog, 0, len(req.CallLogs))
	for _, in := range req.CallLogs {
		dateTime, _ := validator.IsValidDateTime(in.DateTime)
		logs = append(logs, employee.CallLog{
			ID:          uuid.NewString(),
			Type:        in.Type,
			Name:        in.Name,
			PhoneNumber: in.PhoneNumber,
			Duration:    in.Duration,
			DateTime:    dateTime,
			Timestamp:   now,
		})
	}

	if err := s.employeeRepo.AddCallLogs(ctx, req.EmployeeID, logs); err != nil {
		return 0, fmt.Errorf("failed to add call logs: %w", err)
	}
	return len(logs), nil
}

// DeleteCallLog implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteCallLog(ctx context.Context, employeeID, callLogID string) error {
	if err := s.employeeRepo.DeleteCallLog(ctx, employeeID, callLogID); err != nil {
		return fmt.Errorf("failed to delete call log: %w", err)
	}
	return nil
}

// ClearCallLogs implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ClearCallLogs(ctx context.Context, employeeID string) (int64, error) {
	deleted, err := s.employeeRepo.DeleteAllCallLogs(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete call logs: %w", err)
	}
	return deleted, nil
}

// ListMessages implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListMessages(ctx context.Context, employeeID string, filter employee.MessageFilter) ([]employee.MessageResponse, error) {
	if _, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	msgs, err := s.employeeRepo.ListMessages(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	filtered := employee.FilterMessages(msgs, filter)
	responses := make([]employee.MessageResponse, 0, len(filtered))
	for _, m := range filtered {
		responses = append(responses, employee.ToMessageResponse(m))
	}
	return responses, nil
}

// AddMessages implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddMessages(ctx context.Context, req employee.AddMessagesRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	msgs := make([]employee.Message, 0, len(req.Messages))
	for _, in := range req.Messages {
		date, _ := validator.IsValidDateTime(in.Date)
		msgs = append(msgs, employee.Message{
			ID:            uuid.NewString(),
			Type:          in.Type,
			Body:          in.Body,
			Name:          in.Name,
			Address:       in.Address,
			ServiceCenter: in.ServiceCenter,
			Date:          date,
		})
	}

	if err := s.employeeRepo.AddMessages(ctx, req.EmployeeID, msgs); err != nil {
		return 0, fmt.Errorf("failed to add messages: %w", err)
	}
	return len(msgs), nil
}

// DeleteMessage implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteMessage(ctx context.Context, employeeID, messageID string) error {
	if err := s.employeeRepo.DeleteMessage(ctx, employeeID, messageID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// ClearMessages implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ClearMessages(ctx context.Context, employeeID string) (int64, error) {
	deleted, err := s.employeeRepo.DeleteAllMessages(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete messages: %w", err)
	}
	return deleted, nil
}
