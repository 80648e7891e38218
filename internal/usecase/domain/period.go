package domain

import (
	"time"

	"github.com/nicles7/kudos-app/internal/entities"
)

// window is the closed interval [first of month 00:00, now] in a given location.
type window struct {
	start time.Time
	end   time.Time
}

func currentMonth(now time.Time, loc *time.Location) window {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return window{start: start, end: now}
}

func (w window) contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

func (w window) filter(ledger []entities.Kudos) []entities.Kudos {
	res := make([]entities.Kudos, 0, len(ledger))
	for _, k := range ledger {
		if w.contains(k.CreatedAt) {
			res = append(res, k)
		}
	}
	return res
}

func (u *Usecase) month() window {
	return currentMonth(u.now(), u.loc)
}
