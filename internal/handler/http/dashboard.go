package http

import (
	"net/http"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/dashboard"
	"github.com/pulsehr/pulsehr-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetAdminDashboard returns combined admin dashboard data
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetAdminDashboard handles GET /dashboard/admin
func (h *dashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
