package employee_dashboard

import "context"

// EmployeeDashboardService defines the employee dashboard operations
type EmployeeDashboardService interface {
	// GetEmployeeDashboard runs the employee pipeline: access gate, parallel
	// fetch, derivation, assembly. Requires a resolvable profile.
	GetEmployeeDashboard(ctx context.Context) (*EmployeeDashboardResponse, error)
}
