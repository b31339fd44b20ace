package http

import (
	"net/http"

	empDashboard "github.com/pulsehr/pulsehr-backend-go/internal/domain/employee_dashboard"
	"github.com/pulsehr/pulsehr-backend-go/internal/handler/http/response"
)

type EmployeeDashboardHandler interface {
	// GetEmployeeDashboard returns combined employee dashboard data
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
}

type employeeDashboardHandlerImpl struct {
	employeeDashboardService empDashboard.EmployeeDashboardService
}

func NewEmployeeDashboardHandler(employeeDashboardService empDashboard.EmployeeDashboardService) EmployeeDashboardHandler {
	return &employeeDashboardHandlerImpl{employeeDashboardService: employeeDashboardService}
}

// GetEmployeeDashboard handles GET /dashboard/employee
func (h *employeeDashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeDashboardService.GetEmployeeDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
