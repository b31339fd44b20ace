package dashboard

import "context"

// DashboardService defines the admin dashboard operations
type DashboardService interface {
	// GetAdminDashboard runs the admin pipeline: access gate, parallel fetch,
	// derivation, assembly. Requires an admin or stakeholder profile.
	GetAdminDashboard(ctx context.Context) (*AdminDashboardResponse, error)
}
