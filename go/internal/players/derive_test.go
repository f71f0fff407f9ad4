package players

import (
	"testing"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/shopspring/decimal"
)

func TestDeriveSeasonTotals(t *testing.T) {
	tests := []struct {
		name        string
		in          models.PlayerSeasonStats
		points      int
		ppPoints    int
		shPoints    int
		shootingPct string
		savePct     string
	}{
		{
			name:        "empty line derives zeros",
			in:          models.PlayerSeasonStats{},
			shootingPct: "0",
			savePct:     "0",
		},
		{
			name: "skater season",
			in: models.PlayerSeasonStats{
				Goals: 40, Assists: 52,
				PowerPlayGoals: 12, PowerPlayAssists: 18,
				ShortHandedGoals: 2, ShortHandedAssists: 1,
				ShotsOnGoal: 250,
			},
			points:      92,
			ppPoints:    30,
			shPoints:    3,
			shootingPct: "16",
			savePct:     "0",
		},
		{
			name: "goalie season",
			in: models.PlayerSeasonStats{
				Saves: 1500, ShotsAgainst: 1632,
			},
			shootingPct: "0",
			savePct:     "91.91",
		},
		{
			name: "zero shots yields zero shooting percentage",
			in: models.PlayerSeasonStats{
				Goals: 1, Assists: 1, ShotsOnGoal: 0,
			},
			points:      2,
			shootingPct: "0",
			savePct:     "0",
		},
		{
			name: "zero shots against yields zero save percentage",
			in: models.PlayerSeasonStats{
				Saves: 0, ShotsAgainst: 0, Wins: 1,
			},
			shootingPct: "0",
			savePct:     "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSeasonTotals(tt.in)
			if got.Points != tt.points {
				t.Errorf("Points = %d, want %d", got.Points, tt.points)
			}
			if got.PowerPlayPoints != tt.ppPoints {
				t.Errorf("PowerPlayPoints = %d, want %d", got.PowerPlayPoints, tt.ppPoints)
			}
			if got.ShortHandedPoints != tt.shPoints {
				t.Errorf("ShortHandedPoints = %d, want %d", got.ShortHandedPoints, tt.shPoints)
			}
			if want := decimal.RequireFromString(tt.shootingPct); !got.ShootingPercentage.Equal(want) {
				t.Errorf("ShootingPercentage = %s, want %s", got.ShootingPercentage, want)
			}
			if want := decimal.RequireFromString(tt.savePct); !got.SavePercentage.Equal(want) {
				t.Errorf("SavePercentage = %s, want %s", got.SavePercentage, want)
			}
		})
	}
}

func TestDeriveSeasonTotalsPreservesRawCounters(t *testing.T) {
	in := models.PlayerSeasonStats{Goals: 7, Assists: 3, ShotsOnGoal: 50, PenaltyMinutes: 22}
	got := DeriveSeasonTotals(in)
	if got.Goals != 7 || got.Assists != 3 || got.ShotsOnGoal != 50 || got.PenaltyMinutes != 22 {
		t.Errorf("raw counters changed: %+v", got)
	}
}
