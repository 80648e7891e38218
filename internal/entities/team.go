// Package entities contains core business entities.
package entities

// Team groups users under a single lead. Members are derived from User.TeamID.
type Team struct {
	ID     string
	Name   string
	LeadID string
}

// TeamOverview is a team row of the admin dashboard.
type TeamOverview struct {
	Team        Team
	Lead        *User
	MemberCount int
}
