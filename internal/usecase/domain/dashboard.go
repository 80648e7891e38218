package domain

import (
	"context"
	"fmt"

	"github.com/nicles7/kudos-app/internal/entities"
)

// Dashboard aggregates the HR overview for the current month.
func (u *Usecase) Dashboard(ctx context.Context) (entities.Dashboard, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, ledger, err := u.snapshot(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	teams, err := u.repo.ListTeams(ctx)
	if err != nil {
		return entities.Dashboard{}, fmt.Errorf("list teams: %w", err)
	}

	res := entities.Dashboard{
		TotalUsers: len(users),
		Users:      users,
		Teams:      make([]entities.TeamOverview, 0, len(teams)),
	}
	for _, k := range u.month().filter(ledger) {
		res.TotalSent++
		switch k.Type {
		case entities.KudosSilver:
			res.SilverSent++
		case entities.KudosGold:
			res.GoldSent++
		}
	}

	for _, t := range teams {
		row := entities.TeamOverview{Team: t}
		if lead, ok := findUser(users, t.LeadID); ok {
			row.Lead = &lead
		}
		for _, usr := range users {
			if usr.TeamID == t.ID {
				row.MemberCount++
			}
		}
		res.Teams = append(res.Teams, row)
	}
	return res, nil
}
