// Package entities contains core business entities.
package entities

// Role enumerates the closed set of user roles.
type Role string

const (
	// RoleEmployee is a regular team member.
	RoleEmployee Role = "Employee"
	// RoleTeamLead leads exactly one team and may award gold kudos to its members.
	RoleTeamLead Role = "TeamLead"
	// RoleHR has access to the admin dashboard.
	RoleHR Role = "HR"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleTeamLead, RoleHR:
		return true
	}
	return false
}

// User is a domain representation of an employee.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	TeamID    string
	ManagerID *string
	Avatar    string
}
