package players

import (
	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DeriveSeasonTotals fills in the derived fields of a season stat line from
// its raw counters: points as goals plus assists, the special-teams point
// totals, and the two percentages. A percentage with a zero denominator is
// defined as zero, so a goalie with no shots against carries a 0 save
// percentage rather than an error.
func DeriveSeasonTotals(s models.PlayerSeasonStats) models.PlayerSeasonStats {
	s.Points = s.Goals + s.Assists
	s.PowerPlayPoints = s.PowerPlayGoals + s.PowerPlayAssists
	s.ShortHandedPoints = s.ShortHandedGoals + s.ShortHandedAssists
	s.ShootingPercentage = percentage(s.Goals, s.ShotsOnGoal)
	s.SavePercentage = percentage(s.Saves, s.ShotsAgainst)
	return s
}

func percentage(num, den int) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(num)).
		Div(decimal.NewFromInt(int64(den))).
		Mul(hundred).
		Round(2)
}
