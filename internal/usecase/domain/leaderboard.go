// Package domain contains application services orchestrating domain logic by leaderboard.
package domain

import (
	"context"
	"sort"

	"github.com/nicles7/kudos-app/internal/entities"
)

const (
	// FilterAll selects every team on the leaderboard.
	FilterAll = "all"
	// RecentActivityLimit is the size of the recent activity feed.
	RecentActivityLimit = 5
)

// buildLeaderboard ranks receivers of current-month kudos by weighted score.
// Ties are broken by gold count, then by first appearance in the ledger.
func buildLeaderboard(users []entities.User, ledger []entities.Kudos, filter string, w window) []entities.LeaderboardEntry {
	roster := make(map[string]entities.User, len(users))
	for _, usr := range users {
		roster[usr.ID] = usr
	}

	byReceiver := make(map[string]*entities.LeaderboardEntry)
	order := make([]string, 0)
	for _, k := range w.filter(ledger) {
		receiver, ok := roster[k.ReceiverID]
		if !ok {
			continue
		}
		if filter != "" && filter != FilterAll && receiver.TeamID != filter {
			continue
		}
		entry, ok := byReceiver[k.ReceiverID]
		if !ok {
			entry = &entities.LeaderboardEntry{User: receiver}
			byReceiver[k.ReceiverID] = entry
			order = append(order, k.ReceiverID)
		}
		if k.Type == entities.KudosGold {
			entry.GoldCount++
		} else {
			entry.SilverCount++
		}
		entry.KudosCount += k.Type.Weight()
	}

	res := make([]entities.LeaderboardEntry, 0, len(order))
	for _, id := range order {
		res = append(res, *byReceiver[id])
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].KudosCount != res[j].KudosCount {
			return res[i].KudosCount > res[j].KudosCount
		}
		return res[i].GoldCount > res[j].GoldCount
	})
	return res
}

func recentActivity(ledger []entities.Kudos, w window) []entities.Kudos {
	res := newestFirst(w.filter(ledger))
	if len(res) > RecentActivityLimit {
		res = res[:RecentActivityLimit]
	}
	return res
}

// Leaderboard ranks this month's receivers. filter is FilterAll or a team id.
func (u *Usecase) Leaderboard(ctx context.Context, filter string) ([]entities.LeaderboardEntry, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, ledger, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return buildLeaderboard(users, ledger, filter, u.month()), nil
}

// EmployeeOfTheMonth returns the top of the unfiltered leaderboard, or nil.
func (u *Usecase) EmployeeOfTheMonth(ctx context.Context) (*entities.LeaderboardEntry, error) {
	board, err := u.Leaderboard(ctx, FilterAll)
	if err != nil {
		return nil, err
	}
	if len(board) == 0 {
		return nil, nil
	}
	top := board[0]
	return &top, nil
}

// RecentActivity returns the newest kudos of the current month.
func (u *Usecase) RecentActivity(ctx context.Context) ([]entities.Kudos, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ledger, err := u.repo.ListKudos(ctx)
	if err != nil {
		return nil, err
	}
	return recentActivity(ledger, u.month()), nil
}

// LeaderboardView computes the filtered board, the employee of the month and
// the activity feed from a single snapshot.
func (u *Usecase) LeaderboardView(ctx context.Context, filter string) (entities.LeaderboardView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter == "" {
		filter = FilterAll
	}
	users, ledger, err := u.snapshot(ctx)
	if err != nil {
		return entities.LeaderboardView{}, err
	}

	w := u.month()
	view := entities.LeaderboardView{
		Filter:         filter,
		Entries:        buildLeaderboard(users, ledger, filter, w),
		RecentActivity: recentActivity(ledger, w),
	}
	all := view.Entries
	if filter != FilterAll {
		all = buildLeaderboard(users, ledger, FilterAll, w)
	}
	if len(all) > 0 {
		top := all[0]
		view.EmployeeOfTheMonth = &top
	}
	return view, nil
}
