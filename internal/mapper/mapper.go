// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/nicles7/kudos-app/internal/entities"
	oapi "github.com/nicles7/kudos-app/internal/oapi"
)

// ToOAPIUser maps entities.User to transport model.
func ToOAPIUser(u entities.User) oapi.User {
	var managerID *string
	if u.ManagerID != nil {
		id := *u.ManagerID
		managerID = &id
	}
	return oapi.User{
		UserId:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		TeamId:    u.TeamID,
		ManagerId: managerID,
		Avatar:    u.Avatar,
	}
}

// ToOAPIUserList maps a slice of entities.User to transport slice.
func ToOAPIUserList(list []entities.User) []oapi.User {
	res := make([]oapi.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToOAPIUser(u))
	}
	return res
}

// ToOAPITeam maps entities.Team to transport model.
func ToOAPITeam(t entities.Team) oapi.Team {
	return oapi.Team{TeamId: t.ID, Name: t.Name, LeadId: t.LeadID}
}

// ToOAPITeamList maps a slice of entities.Team to transport slice.
func ToOAPITeamList(list []entities.Team) []oapi.Team {
	res := make([]oapi.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToOAPITeam(t))
	}
	return res
}

// FromOAPIImage builds an entities.Image from transport DTO. Empty images map to nil.
func FromOAPIImage(src *oapi.Image) *entities.Image {
	if src == nil || len(src.Data) == 0 {
		return nil
	}
	return &entities.Image{Data: src.Data, MIMEType: src.MimeType}
}

// ToOAPIImage maps entities.Image to transport model.
func ToOAPIImage(img *entities.Image) *oapi.Image {
	if img == nil {
		return nil
	}
	return &oapi.Image{Data: img.Data, MimeType: img.MIMEType}
}

// FromOAPIKudos builds an issuance request on behalf of senderID.
func FromOAPIKudos(senderID string, src oapi.PostKudosJSONRequestBody) entities.IssueRequest {
	return entities.IssueRequest{
		SenderID:   senderID,
		ReceiverID: src.ReceiverId,
		Type:       entities.KudosType(src.Type),
		Message:    src.Message,
		Image:      FromOAPIImage(src.Image),
	}
}

// ToOAPIKudos maps entities.Kudos to transport model.
func ToOAPIKudos(k entities.Kudos) oapi.Kudos {
	return oapi.Kudos{
		KudosId:    k.ID,
		SenderId:   k.SenderID,
		ReceiverId: k.ReceiverID,
		Type:       string(k.Type),
		Message:    k.Message,
		CreatedAt:  k.CreatedAt,
		Image:      ToOAPIImage(k.Image),
	}
}

// ToOAPIKudosList maps a slice of entities.Kudos to transport slice.
func ToOAPIKudosList(list []entities.Kudos) []oapi.Kudos {
	res := make([]oapi.Kudos, 0, len(list))
	for _, k := range list {
		res = append(res, ToOAPIKudos(k))
	}
	return res
}

// ToOAPILimits maps the quota snapshot to transport model.
func ToOAPILimits(l entities.Limits) oapi.Limits {
	return oapi.Limits{
		SilverGiven:     l.SilverGiven,
		SilverRemaining: l.SilverRemaining,
		SilverLimit:     l.SilverLimit,
		GoldGiven:       l.GoldGiven,
		GoldRemaining:   l.GoldRemaining,
		GoldLimit:       l.GoldLimit,
	}
}

// ToOAPILeaderboardEntry maps a ranked entry; rank is 1-based.
func ToOAPILeaderboardEntry(rank int, e entities.LeaderboardEntry) oapi.LeaderboardEntry {
	return oapi.LeaderboardEntry{
		Rank:        rank,
		User:        ToOAPIUser(e.User),
		KudosCount:  e.KudosCount,
		GoldCount:   e.GoldCount,
		SilverCount: e.SilverCount,
	}
}

// ToOAPILeaderboard maps the leaderboard view, keeping at most limit entries when limit > 0.
func ToOAPILeaderboard(v entities.LeaderboardView, limit int) oapi.Leaderboard {
	entries := v.Entries
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	res := oapi.Leaderboard{
		Team:           v.Filter,
		Entries:        make([]oapi.LeaderboardEntry, 0, len(entries)),
		RecentActivity: ToOAPIKudosList(v.RecentActivity),
	}
	for i, e := range entries {
		res.Entries = append(res.Entries, ToOAPILeaderboardEntry(i+1, e))
	}
	if v.EmployeeOfTheMonth != nil {
		top := ToOAPILeaderboardEntry(1, *v.EmployeeOfTheMonth)
		res.EmployeeOfTheMonth = &top
	}
	return res
}

// ToOAPIDashboard maps the HR overview to transport model.
func ToOAPIDashboard(d entities.Dashboard) oapi.Dashboard {
	teams := make([]oapi.TeamOverview, 0, len(d.Teams))
	for _, t := range d.Teams {
		row := oapi.TeamOverview{Team: ToOAPITeam(t.Team), MemberCount: t.MemberCount}
		if t.Lead != nil {
			lead := ToOAPIUser(*t.Lead)
			row.Lead = &lead
		}
		teams = append(teams, row)
	}
	return oapi.Dashboard{
		TotalSent:  d.TotalSent,
		SilverSent: d.SilverSent,
		GoldSent:   d.GoldSent,
		TotalUsers: d.TotalUsers,
		Users:      ToOAPIUserList(d.Users),
		Teams:      teams,
	}
}
