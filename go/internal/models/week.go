package models

import (
	"time"

	"github.com/google/uuid"
)

// FantasyWeek is one scoring period within a league's season. Week numbers
// are unique per league.
type FantasyWeek struct {
	ID         uuid.UUID `json:"id"`
	LeagueID   uuid.UUID `json:"league_id"`
	WeekNumber int       `json:"week_number"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	IsPlayoffs bool      `json:"is_playoffs"`
}

// Contains reports whether the given date falls within the week's bounds
func (w *FantasyWeek) Contains(t time.Time) bool {
	return !t.Before(w.StartDate) && !t.After(w.EndDate)
}
