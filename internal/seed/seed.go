// Package seed generates a synthetic season snapshot for local runs and
// demos. Entity IDs and the schedule are deterministic for a given seed;
// event IDs are fresh UUIDs so repeated seeding never collides.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/okian/gridiron/internal/adapters/sqlite"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/logger"
)

var teamNames = []string{
	"Ravens", "Raptors", "Comets", "Mustangs",
	"Harbor Sharks", "Ironbacks", "Night Owls", "Prairie Wolves",
}

var firstNames = []string{
	"Jae", "Sam", "Marcus", "Deion", "Tyrell", "Andre", "Khalil", "Devon",
	"Isaiah", "Jordan", "Caleb", "Malik", "Trent", "Xavier", "Noah", "Elijah",
}

var lastNames = []string{
	"Okafor", "Reyes", "Whitfield", "Sanders", "Boone", "Calloway", "Drummond",
	"Ellison", "Fontaine", "Graves", "Holloway", "Iverson", "Jennings", "Kershaw",
}

var positions = []string{"QB", "RB", "WR", "TE", "OL", "DL", "LB", "CB", "S", "K", "P", "KR"}

// weightedAction pairs an action name with how often it should appear.
type weightedAction struct {
	name   string
	weight int
}

var actionWeights = []weightedAction{
	{"Rush", 20},
	{"Pass Complete", 14},
	{"Pass Incomplete", 8},
	{"Pass Target", 10},
	{"Catch", 12},
	{"Tackle", 16},
	{"Tackle Assist", 8},
	{"Sack", 2},
	{"Sack Assist", 1},
	{"Tackle For Loss", 2},
	{"Deflection", 3},
	{"Interception", 1},
	{"Field Goal Attempt", 1},
	{"Field Goal Made", 1},
	{"PAT Attempt", 1},
	{"PAT Made", 1},
	{"Punt", 2},
	{"Kick Return", 2},
	{"Punt Return", 1},
}

// Summary reports what a seeding run wrote.
type Summary struct {
	SeasonYear  int
	Teams       int
	Players     int
	Games       int
	Assignments int
	Events      int
}

// Generator writes a synthetic season through the snapshot store.
type Generator struct {
	seed           int64
	seasonYear     int
	teamCount      int
	playersPerTeam int
	weeks          int
	eventsPerGame  int

	logger logger.Logger
}

// NewGenerator creates a generator with configuration options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seed:           1,
		seasonYear:     time.Now().Year(),
		teamCount:      4,
		playersPerTeam: 12,
		weeks:          6,
		eventsPerGame:  120,
		logger:         logger.Get().Named("seed"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.teamCount > len(teamNames) {
		g.teamCount = len(teamNames)
	}
	if g.teamCount%2 != 0 {
		g.teamCount--
	}
	return g
}

// Generate writes one season into the store and returns counts.
func (g *Generator) Generate(ctx context.Context, store *sqlite.Store) (Summary, error) {
	rng := rand.New(rand.NewSource(g.seed))

	g.logger.Info(ctx, "seeding season snapshot",
		logger.Int("year", g.seasonYear),
		logger.Int("teams", g.teamCount),
		logger.Int("weeks", g.weeks),
	)

	seasonID := fmt.Sprintf("season-%d", g.seasonYear)
	if err := store.PutSeason(ctx, model.Season{ID: seasonID, Year: g.seasonYear}); err != nil {
		return Summary{}, err
	}

	summary := Summary{SeasonYear: g.seasonYear}

	teams, players, err := g.seedTeams(ctx, store, rng, seasonID, &summary)
	if err != nil {
		return Summary{}, err
	}

	opening := time.Date(g.seasonYear, time.September, 7, 0, 0, 0, 0, time.UTC)
	for week := 1; week <= g.weeks; week++ {
		gameDate := opening.AddDate(0, 0, (week-1)*7)
		pairing := rng.Perm(len(teams))
		for i := 0; i+1 < len(pairing); i += 2 {
			home, away := teams[pairing[i]], teams[pairing[i+1]]
			gameID := fmt.Sprintf("%s-wk%02d-%s-%s", seasonID, week, home, away)
			if err := store.PutGame(ctx, model.Game{
				ID: gameID, SeasonID: seasonID, Week: week, Date: gameDate,
			}); err != nil {
				return Summary{}, err
			}
			summary.Games++

			if err := g.seedEvents(ctx, store, rng, gameID, home, away, players, &summary); err != nil {
				return Summary{}, err
			}
		}
	}

	g.logger.Info(ctx, "season snapshot seeded",
		logger.Int("games", summary.Games),
		logger.Int("events", summary.Events),
	)
	return summary, nil
}

// seedTeams writes teams, players and active roster assignments, and
// returns team IDs plus each team's player IDs.
func (g *Generator) seedTeams(ctx context.Context, store *sqlite.Store, rng *rand.Rand,
	seasonID string, summary *Summary) ([]string, map[string][]string, error) {

	teams := make([]string, 0, g.teamCount)
	players := make(map[string][]string, g.teamCount)
	rosterStart := time.Date(g.seasonYear, time.August, 1, 0, 0, 0, 0, time.UTC)

	for t := 0; t < g.teamCount; t++ {
		teamID := fmt.Sprintf("team-%02d", t+1)
		if err := store.PutTeam(ctx, model.Team{ID: teamID, Name: teamNames[t]}); err != nil {
			return nil, nil, err
		}
		teams = append(teams, teamID)
		summary.Teams++

		for p := 0; p < g.playersPerTeam; p++ {
			playerID := fmt.Sprintf("%s-player-%02d", teamID, p+1)
			if err := store.PutPlayer(ctx, model.Player{
				ID:        playerID,
				FirstName: firstNames[rng.Intn(len(firstNames))],
				LastName:  lastNames[rng.Intn(len(lastNames))],
				HeightIn:  66 + rng.Intn(14),
				WeightLb:  160 + rng.Intn(120),
			}); err != nil {
				return nil, nil, err
			}
			players[teamID] = append(players[teamID], playerID)
			summary.Players++

			slots := [3]string{positions[rng.Intn(len(positions))]}
			if rng.Intn(3) == 0 {
				slots[1] = positions[rng.Intn(len(positions))]
			}
			// Jersey text mimics spreadsheet export: some carry ".0".
			jersey := fmt.Sprintf("%d", 1+rng.Intn(99))
			if rng.Intn(2) == 0 {
				jersey += ".0"
			}
			if err := store.PutAssignment(ctx, model.RosterAssignment{
				ID:        fmt.Sprintf("ra-%s", playerID),
				TeamID:    teamID,
				PlayerID:  playerID,
				SeasonID:  seasonID,
				Positions: slots,
				Jersey:    jersey,
				Start:     rosterStart,
				End:       model.RosterEndSentinel,
			}); err != nil {
				return nil, nil, err
			}
			summary.Assignments++
		}
	}
	return teams, players, nil
}

// seedEvents writes one game's worth of play events.
func (g *Generator) seedEvents(ctx context.Context, store *sqlite.Store, rng *rand.Rand,
	gameID, home, away string, players map[string][]string, summary *Summary) error {

	totalWeight := 0
	for _, wa := range actionWeights {
		totalWeight += wa.weight
	}

	for i := 0; i < g.eventsPerGame; i++ {
		teamID := home
		if rng.Intn(2) == 1 {
			teamID = away
		}
		roster := players[teamID]
		playerID := roster[rng.Intn(len(roster))]

		pick := rng.Intn(totalWeight)
		var actionName string
		for _, wa := range actionWeights {
			if pick < wa.weight {
				actionName = wa.name
				break
			}
			pick -= wa.weight
		}

		ev := model.PlayEvent{
			EventID:    uuid.NewString(),
			GameID:     gameID,
			TeamID:     teamID,
			PlayerID:   playerID,
			ActionName: actionName,
		}

		switch actionName {
		case "Rush", "Pass Complete", "Catch", "Punt", "Kick Return", "Punt Return":
			ev.Yards = fmt.Sprintf("%d", rng.Intn(30)-5)
			if rng.Intn(25) == 0 {
				ev.Touchdown = true
				ev.Category = "Offense"
			}
		case "Sack":
			ev.SackWeight = 1.0
			ev.Category = "Defense"
		case "Sack Assist":
			ev.SackWeight = 0.5
			ev.Category = "Defense"
		case "Tackle", "Tackle Assist", "Tackle For Loss", "Deflection", "Interception":
			ev.Category = "Defense"
			if actionName == "Interception" && rng.Intn(6) == 0 {
				ev.Touchdown = true
			}
			if rng.Intn(200) == 0 {
				ev.Safety = true
			}
		}

		if err := store.AppendEvent(ctx, ev); err != nil {
			return err
		}
		summary.Events++
	}
	return nil
}
