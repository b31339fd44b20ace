package profile

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleStakeholder Role = "stakeholder"
	RoleEmployee    Role = "employee"
)

// CanViewTeamDashboard reports whether the role may run the admin pipeline.
func (r Role) CanViewTeamDashboard() bool {
	return r == RoleAdmin || r == RoleStakeholder
}

// Profile is one row of the profiles table. Display fields are nullable
// because onboarding may create the row before the employee fills them in.
type Profile struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     *string
	AvatarURL    *string
	JobTitle     *string
	Role         Role
	CreatedAt    time.Time
}
