// Package domain contains application services orchestrating domain logic by quota.
package domain

import (
	"context"
	"fmt"

	"github.com/nicles7/kudos-app/internal/entities"
)

// SilverLimit is the number of silver kudos any user may send per month.
const SilverLimit = 2

// GoldLimit returns the monthly gold quota of a team lead with n direct reports.
func GoldLimit(n int) int {
	switch {
	case n >= 8:
		return 4
	case n >= 6:
		return 3
	case n >= 4:
		return 2
	case n >= 1:
		return 1
	default:
		return 0
	}
}

// computeLimits is a pure function of the roster, the ledger and the window.
// Unknown users get the default silver allowance and no gold.
func computeLimits(users []entities.User, ledger []entities.Kudos, userID string, w window) entities.Limits {
	var silverGiven, goldGiven int
	for _, k := range ledger {
		if k.SenderID != userID || !w.contains(k.CreatedAt) {
			continue
		}
		switch k.Type {
		case entities.KudosSilver:
			silverGiven++
		case entities.KudosGold:
			goldGiven++
		}
	}

	goldLimit := 0
	if sender, ok := findUser(users, userID); ok && sender.Role == entities.RoleTeamLead {
		goldLimit = GoldLimit(len(directReportsOf(users, userID)))
	}

	return entities.Limits{
		SilverGiven:     silverGiven,
		SilverRemaining: SilverLimit - silverGiven,
		SilverLimit:     SilverLimit,
		GoldGiven:       goldGiven,
		GoldRemaining:   goldLimit - goldGiven,
		GoldLimit:       goldLimit,
	}
}

// Limits returns how many kudos the user has sent this month and how many are left.
func (u *Usecase) Limits(ctx context.Context, userID string) (entities.Limits, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, ledger, err := u.snapshot(ctx)
	if err != nil {
		return entities.Limits{}, err
	}
	return computeLimits(users, ledger, userID, u.month()), nil
}

func (u *Usecase) snapshot(ctx context.Context) ([]entities.User, []entities.Kudos, error) {
	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list users: %w", err)
	}
	ledger, err := u.repo.ListKudos(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list kudos: %w", err)
	}
	return users, ledger, nil
}
