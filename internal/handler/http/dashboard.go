package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emptrack/emptrack-backend-go/internal/domain/dashboard"
	"github.com/emptrack/emptrack-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetEmployeeDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetEmployeeDashboard(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		slog.Error("GetEmployeeDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
