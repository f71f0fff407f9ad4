package scoring

import (
	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/shopspring/decimal"
)

// ComputePoints converts a raw stat line into fantasy points under the
// league's weights: the sum over every category of count x weight. The
// category set is fixed; games played is tracked but never scored. The
// function is pure, so recomputation with identical inputs always yields
// the identical result.
func ComputePoints(line models.StatLine, cfg models.ScoringConfig) decimal.Decimal {
	points := decimal.Zero
	for _, c := range []struct {
		count  int
		weight decimal.Decimal
	}{
		{line.Goals, cfg.Goals},
		{line.Assists, cfg.Assists},
		{line.PlusMinus, cfg.PlusMinus},
		{line.PenaltyMinutes, cfg.PenaltyMinutes},
		{line.PowerPlayGoals, cfg.PowerPlayGoals},
		{line.PowerPlayAssists, cfg.PowerPlayAssists},
		{line.ShortHandedGoals, cfg.ShortHandedGoals},
		{line.ShortHandedAssists, cfg.ShortHandedAssists},
		{line.ShotsOnGoal, cfg.ShotsOnGoal},
		{line.Hits, cfg.Hits},
		{line.BlockedShots, cfg.BlockedShots},
		{line.Wins, cfg.Wins},
		{line.Losses, cfg.Losses},
		{line.GoalsAgainst, cfg.GoalsAgainst},
		{line.Saves, cfg.Saves},
		{line.Shutouts, cfg.Shutouts},
	} {
		if c.count == 0 {
			continue
		}
		points = points.Add(c.weight.Mul(decimal.NewFromInt(int64(c.count))))
	}
	return points
}
