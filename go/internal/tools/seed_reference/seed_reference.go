package main

import (
	"context"
	"fmt"
	"os"

	"github.com/blueline/fantasyhockey/go/internal/dbconfig"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seeds the NHL reference data every league depends on: conferences,
// divisions, the 32 teams, player positions, roster slot definitions, and
// the current season. Safe to re-run; every insert is an upsert keyed on
// the natural identifier.

type division struct {
	name         string
	abbreviation string
	conference   string
}

type team struct {
	city         string
	name         string
	abbreviation string
	division     string
}

type position struct {
	name         string
	abbreviation string
	category     string
}

type rosterPosition struct {
	name         string
	abbreviation string
	isStarting   bool
	maxPlayers   int
}

var conferences = map[string]string{
	"Eastern": "EAST",
	"Western": "WEST",
}

var divisions = []division{
	{"Atlantic", "ATL", "Eastern"},
	{"Metropolitan", "MET", "Eastern"},
	{"Central", "CEN", "Western"},
	{"Pacific", "PAC", "Western"},
}

var teams = []team{
	{"Boston", "Bruins", "BOS", "Atlantic"},
	{"Buffalo", "Sabres", "BUF", "Atlantic"},
	{"Detroit", "Red Wings", "DET", "Atlantic"},
	{"Florida", "Panthers", "FLA", "Atlantic"},
	{"Montreal", "Canadiens", "MTL", "Atlantic"},
	{"Ottawa", "Senators", "OTT", "Atlantic"},
	{"Tampa Bay", "Lightning", "TBL", "Atlantic"},
	{"Toronto", "Maple Leafs", "TOR", "Atlantic"},
	{"Carolina", "Hurricanes", "CAR", "Metropolitan"},
	{"Columbus", "Blue Jackets", "CBJ", "Metropolitan"},
	{"New Jersey", "Devils", "NJD", "Metropolitan"},
	{"New York", "Islanders", "NYI", "Metropolitan"},
	{"New York", "Rangers", "NYR", "Metropolitan"},
	{"Philadelphia", "Flyers", "PHI", "Metropolitan"},
	{"Pittsburgh", "Penguins", "PIT", "Metropolitan"},
	{"Washington", "Capitals", "WSH", "Metropolitan"},
	{"Chicago", "Blackhawks", "CHI", "Central"},
	{"Colorado", "Avalanche", "COL", "Central"},
	{"Dallas", "Stars", "DAL", "Central"},
	{"Minnesota", "Wild", "MIN", "Central"},
	{"Nashville", "Predators", "NSH", "Central"},
	{"St. Louis", "Blues", "STL", "Central"},
	{"Utah", "Mammoth", "UTA", "Central"},
	{"Winnipeg", "Jets", "WPG", "Central"},
	{"Anaheim", "Ducks", "ANA", "Pacific"},
	{"Calgary", "Flames", "CGY", "Pacific"},
	{"Edmonton", "Oilers", "EDM", "Pacific"},
	{"Los Angeles", "Kings", "LAK", "Pacific"},
	{"San Jose", "Sharks", "SJS", "Pacific"},
	{"Seattle", "Kraken", "SEA", "Pacific"},
	{"Vancouver", "Canucks", "VAN", "Pacific"},
	{"Vegas", "Golden Knights", "VGK", "Pacific"},
}

var positions = []position{
	{"Center", "C", "forward"},
	{"Left Wing", "LW", "forward"},
	{"Right Wing", "RW", "forward"},
	{"Left Defense", "LD", "defense"},
	{"Right Defense", "RD", "defense"},
	{"Goalie", "G", "goalie"},
}

// The standard lineup: nine starters plus a fourteen man bench for a
// twenty three man roster.
var rosterPositions = []rosterPosition{
	{"Center", "C", true, 2},
	{"Left Wing", "LW", true, 2},
	{"Right Wing", "RW", true, 2},
	{"Defense", "D", true, 2},
	{"Goalie", "G", true, 1},
	{"Bench", "BN", false, 14},
}

func main() {
	ctx := context.Background()

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("reference data seeded")
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	conferenceIDs := make(map[string]string, len(conferences))
	for name, abbr := range conferences {
		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO conferences (id, name, abbreviation)
			VALUES (gen_random_uuid(), $1, $2)
			ON CONFLICT (name) DO UPDATE SET abbreviation = EXCLUDED.abbreviation
			RETURNING id`, name, abbr).Scan(&id)
		if err != nil {
			return fmt.Errorf("conference %s: %w", name, err)
		}
		conferenceIDs[name] = id
	}

	divisionIDs := make(map[string]string, len(divisions))
	for _, d := range divisions {
		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO divisions (id, name, abbreviation, conference_id)
			VALUES (gen_random_uuid(), $1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET conference_id = EXCLUDED.conference_id
			RETURNING id`, d.name, d.abbreviation, conferenceIDs[d.conference]).Scan(&id)
		if err != nil {
			return fmt.Errorf("division %s: %w", d.name, err)
		}
		divisionIDs[d.name] = id
	}

	var inserted, skipped int
	for _, t := range teams {
		tag, err := pool.Exec(ctx, `
			INSERT INTO teams (id, name, city, abbreviation, division_id, is_active, created_at)
			VALUES (gen_random_uuid(), $1, $2, $3, $4, TRUE, NOW())
			ON CONFLICT (abbreviation) DO NOTHING`,
			t.name, t.city, t.abbreviation, divisionIDs[t.division])
		if err != nil {
			return fmt.Errorf("team %s: %w", t.abbreviation, err)
		}
		if tag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}
	fmt.Printf("teams: %d inserted, %d already present\n", inserted, skipped)

	for _, p := range positions {
		_, err := pool.Exec(ctx, `
			INSERT INTO positions (id, name, abbreviation, category)
			VALUES (gen_random_uuid(), $1, $2, $3)
			ON CONFLICT (abbreviation) DO NOTHING`,
			p.name, p.abbreviation, p.category)
		if err != nil {
			return fmt.Errorf("position %s: %w", p.abbreviation, err)
		}
	}

	for _, rp := range rosterPositions {
		_, err := pool.Exec(ctx, `
			INSERT INTO roster_positions (id, name, abbreviation, is_starting, max_players)
			VALUES (gen_random_uuid(), $1, $2, $3, $4)
			ON CONFLICT (abbreviation) DO UPDATE SET
				is_starting = EXCLUDED.is_starting,
				max_players = EXCLUDED.max_players`,
			rp.name, rp.abbreviation, rp.isStarting, rp.maxPlayers)
		if err != nil {
			return fmt.Errorf("roster position %s: %w", rp.abbreviation, err)
		}
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO seasons (id, name, start_date, end_date, playoffs_start_date, is_current)
		VALUES (gen_random_uuid(), '2025-26', '2025-10-07', '2026-06-30', '2026-04-18', TRUE)
		ON CONFLICT (name) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("season: %w", err)
	}

	return nil
}
