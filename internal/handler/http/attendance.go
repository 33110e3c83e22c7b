package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/handler/http/response"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/validator"
)

// maxMultipartMemory bounds the in-memory part of a check-in upload.
const maxMultipartMemory = 10 << 20

type AttendanceHandler interface {
	RecordAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetMonthCalendar(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	location          *time.Location
	now               func() time.Time
}

// NewAttendanceHandler builds the handler. loc decides the default month of
// the calendar endpoint.
func NewAttendanceHandler(attendanceService attendance.AttendanceService, loc *time.Location) AttendanceHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		location:          loc,
		now:               time.Now,
	}
}

// RecordAttendance implements AttendanceHandler.
// Accepts multipart/form-data with a JSON "data" field and an optional "photo".
func (h *attendanceHandlerImpl) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	var req attendance.CreateAttendanceRequest
	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("RecordAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid JSON in 'data' field", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	file, fileHeader, err := r.FormFile("photo")
	switch {
	case err == nil:
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	case err != http.ErrMissingFile:
		slog.Error("Failed to read photo", "error", err)
		response.BadRequest(w, "Failed to read photo", nil)
		return
	}

	created, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		slog.Error("RecordAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", created)
}

// ListAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListEmployeeAttendance(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthCalendar implements AttendanceHandler.
// year and month default to the current month in the configured timezone.
func (h *attendanceHandlerImpl) GetMonthCalendar(w http.ResponseWriter, r *http.Request) {
	today := h.now().In(h.location)
	req := attendance.MonthCalendarRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Year:       today.Year(),
		Month:      int(today.Month()),
	}

	var errs validator.ValidationErrors
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number"})
		}
		req.Year = year
	}
	if m := r.URL.Query().Get("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number"})
		}
		req.Month = month
	}
	if mm := r.URL.Query().Get("merge_missing"); mm != "" {
		merge, err := strconv.ParseBool(mm)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "merge_missing", Message: "merge_missing must be true or false"})
		}
		req.MergeMissing = merge
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	calendar, err := h.attendanceService.GetMonthCalendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar)
}
