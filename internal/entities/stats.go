// Package entities contains core business entities.
package entities

// Limits is the monthly quota snapshot of a single user.
// Remaining values are not clamped: anything <= 0 means no quota left.
type Limits struct {
	SilverGiven     int `json:"silver_given"`
	SilverRemaining int `json:"silver_remaining"`
	SilverLimit     int `json:"silver_limit"`
	GoldGiven       int `json:"gold_given"`
	GoldRemaining   int `json:"gold_remaining"`
	GoldLimit       int `json:"gold_limit"`
}

// Remaining returns the remaining quota for the given type.
func (l Limits) Remaining(t KudosType) int {
	if t == KudosGold {
		return l.GoldRemaining
	}
	return l.SilverRemaining
}

// LeaderboardEntry aggregates current-month kudos received by one user.
type LeaderboardEntry struct {
	User        User
	KudosCount  int
	GoldCount   int
	SilverCount int
}

// LeaderboardView bundles everything the leaderboard page shows.
type LeaderboardView struct {
	Filter             string
	Entries            []LeaderboardEntry
	EmployeeOfTheMonth *LeaderboardEntry
	RecentActivity     []Kudos
}

// Dashboard is the HR overview of the current month.
type Dashboard struct {
	TotalSent  int
	SilverSent int
	GoldSent   int
	TotalUsers int
	Users      []User
	Teams      []TeamOverview
}
