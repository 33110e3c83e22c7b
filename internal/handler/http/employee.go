package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)

	ListCallLogs(w http.ResponseWriter, r *http.Request)
	AddCallLogs(w http.ResponseWriter, r *http.Request)
	DeleteCallLog(w http.ResponseWriter, r *http.Request)
	ClearCallLogs(w http.ResponseWriter, r *http.Request)

	ListMessages(w http.ResponseWriter, r *http.Request)
	AddMessages(w http.ResponseWriter, r *http.Request)
	DeleteMessage(w http.ResponseWriter, r *http.Request)
	ClearMessages(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var filter employee.EmployeeFilter

	filter.Search = r.URL.Query().Get("search")
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil {
			filter.Page = page
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil {
			filter.Limit = limit
		}
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// CreateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// UpdateStatus implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.employeeService.ApplyStatus(r.Context(), chi.URLParam(r, "employeeID"), req.Status)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee status updated to "+updated.ApprovalStatus, updated)
}

// GetSummary implements EmployeeHandler.
func (h *employeeHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.employeeService.GetSummary(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ListCallLogs implements EmployeeHandler.
func (h *employeeHandlerImpl) ListCallLogs(w http.ResponseWriter, r *http.Request) {
	filter := employee.CallLogFilter{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
		Sort:   employee.SortOrder(r.URL.Query().Get("sort")),
	}

	logs, err := h.employeeService.ListCallLogs(r.Context(), chi.URLParam(r, "employeeID"), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// AddCallLogs implements EmployeeHandler.
func (h *employeeHandlerImpl) AddCallLogs(w http.ResponseWriter, r *http.Request) {
	var req employee.AddCallLogsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddCallLogs decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	added, err := h.employeeService.AddCallLogs(r.Context(), req)
	if err != nil {
		slog.Error("AddCallLogs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Call logs uploaded successfully", map[string]int{"added": added})
}

// DeleteCallLog implements EmployeeHandler.
func (h *employeeHandlerImpl) DeleteCallLog(w http.ResponseWriter, r *http.Request) {
	err := h.employeeService.DeleteCallLog(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "callLogID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Call log deleted successfully", nil)
}

// ClearCallLogs implements EmployeeHandler.
func (h *employeeHandlerImpl) ClearCallLogs(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.employeeService.ClearCallLogs(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All call logs deleted successfully", map[string]int64{"deleted": deleted})
}

// ListMessages implements EmployeeHandler.
func (h *employeeHandlerImpl) ListMessages(w http.ResponseWriter, r *http.Request) {
	filter := employee.MessageFilter{Search: r.URL.Query().Get("search")}

	msgs, err := h.employeeService.ListMessages(r.Context(), chi.URLParam(r, "employeeID"), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, msgs)
}

// AddMessages implements EmployeeHandler.
func (h *employeeHandlerImpl) AddMessages(w http.ResponseWriter, r *http.Request) {
	var req employee.AddMessagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddMessages decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	added, err := h.employeeService.AddMessages(r.Context(), req)
	if err != nil {
		slog.Error("AddMessages service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Messages uploaded successfully", map[string]int{"added": added})
}

// DeleteMessage implements EmployeeHandler.
func (h *employeeHandlerImpl) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	err := h.employeeService.DeleteMessage(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "messageID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Message deleted successfully", nil)
}

// ClearMessages implements EmployeeHandler.
func (h *employeeHandlerImpl) ClearMessages(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.employeeService.ClearMessages(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All messages deleted successfully", map[string]int64{"deleted": deleted})
}
