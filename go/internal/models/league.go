package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoringMode represents how a league turns raw stats into standings
type ScoringMode string

const (
	ScoringModePoints     ScoringMode = "points"
	ScoringModeCategories ScoringMode = "categories"
	ScoringModeRotisserie ScoringMode = "rotisserie"
	ScoringModeHeadToHead ScoringMode = "head_to_head"
)

// League represents a fantasy hockey league
type League struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	SeasonID           uuid.UUID   `json:"season_id"`
	CommissionerID     uuid.UUID   `json:"commissioner_id"`
	ScoringMode        ScoringMode `json:"scoring_mode"`
	MaxTeams           int         `json:"max_teams"`
	RosterSize         int         `json:"roster_size"`
	StartingLineupSize int         `json:"starting_lineup_size"`
	IsActive           bool        `json:"is_active"`
	IsPublic           bool        `json:"is_public"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// IsFull reports whether the league has reached its team capacity
func (l *League) IsFull(teamCount int) bool {
	return teamCount >= l.MaxTeams
}
