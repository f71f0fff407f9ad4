package models

import (
	"time"

	"github.com/google/uuid"
)

// Conference is an NHL conference (Eastern, Western)
type Conference struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
}

// Division is an NHL division belonging to a conference
type Division struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	ConferenceID uuid.UUID `json:"conference_id"`
}

// Team is an NHL team, consumed as read-only reference data
type Team struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Abbreviation string    `json:"abbreviation"`
	DivisionID   uuid.UUID `json:"division_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (t *Team) FullName() string {
	return t.City + " " + t.Name
}

// Season is one NHL season. At most one season is current at a time,
// enforced by leagues.App.SetCurrentSeason.
type Season struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	PlayoffsStartDate *time.Time `json:"playoffs_start_date,omitempty"`
	IsCurrent         bool       `json:"is_current"`
}
