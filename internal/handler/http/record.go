package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emptrack/emptrack-backend-go/internal/domain/record/location"
	"github.com/emptrack/emptrack-backend-go/internal/handler/http/response"
	"github.com/emptrack/emptrack-backend-go/internal/service/record"
)

// RecordHandler serves the read-mostly device records: complaints, salary
// details and free-text location pings.
type RecordHandler interface {
	ListComplaints(w http.ResponseWriter, r *http.Request)
	GetSalary(w http.ResponseWriter, r *http.Request)
	ListLocations(w http.ResponseWriter, r *http.Request)
	CreateLocation(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.RecordService
}

func NewRecordHandler(recordService record.RecordService) RecordHandler {
	return &recordHandlerImpl{recordService: recordService}
}

// ListComplaints implements RecordHandler.
func (h *recordHandlerImpl) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.recordService.ListComplaints(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, complaints)
}

// GetSalary implements RecordHandler.
func (h *recordHandlerImpl) GetSalary(w http.ResponseWriter, r *http.Request) {
	salary, err := h.recordService.GetSalary(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, salary)
}

// ListLocations implements RecordHandler.
func (h *recordHandlerImpl) ListLocations(w http.ResponseWriter, r *http.Request) {
	pings, err := h.recordService.ListLocationPings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pings)
}

// CreateLocation implements RecordHandler.
func (h *recordHandlerImpl) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req location.CreatePingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ping, err := h.recordService.CreateLocationPing(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location recorded successfully", ping)
}
