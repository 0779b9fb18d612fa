// Package refdata holds the in-memory reference entities a run joins
// against: seasons, teams, players, games and roster assignments. A
// store is loaded once per run and then read concurrently by workers,
// so reads take a shared lock and writes are expected only during load.
package refdata

import (
	"sync"

	"github.com/okian/gridiron/internal/domain/model"
)

type rosterKey struct {
	teamID   string
	playerID string
	seasonID string
}

// Store is an in-memory lookup table over the reference entities.
type Store struct {
	mu      sync.RWMutex
	seasons map[string]model.Season
	teams   map[string]model.Team
	players map[string]model.Player
	games   map[string]model.Game
	rosters map[rosterKey][]model.RosterAssignment
}

// NewStore creates an empty reference data store.
func NewStore() *Store {
	return &Store{
		seasons: make(map[string]model.Season),
		teams:   make(map[string]model.Team),
		players: make(map[string]model.Player),
		games:   make(map[string]model.Game),
		rosters: make(map[rosterKey][]model.RosterAssignment),
	}
}

// AddSeason registers a season, replacing any existing record with the same ID.
func (s *Store) AddSeason(season model.Season) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons[season.ID] = season
}

// AddTeam registers a team.
func (s *Store) AddTeam(team model.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = team
}

// AddPlayer registers a player.
func (s *Store) AddPlayer(player model.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
}

// AddGame registers a game.
func (s *Store) AddGame(game model.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
}

// AddAssignment appends a roster assignment under its (team, player, season) key.
func (s *Store) AddAssignment(a model.RosterAssignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := rosterKey{teamID: a.TeamID, playerID: a.PlayerID, seasonID: a.SeasonID}
	s.rosters[k] = append(s.rosters[k], a)
}

// SeasonByID looks up a season.
func (s *Store) SeasonByID(id string) (model.Season, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	season, ok := s.seasons[id]
	return season, ok
}

// TeamByID looks up a team.
func (s *Store) TeamByID(id string) (model.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[id]
	return team, ok
}

// PlayerByID looks up a player.
func (s *Store) PlayerByID(id string) (model.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	return player, ok
}

// GameByID looks up a game.
func (s *Store) GameByID(id string) (model.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	return game, ok
}

// Assignments returns a copy of every roster assignment on record for
// the key, active or not. It satisfies the roster resolver's source
// contract.
func (s *Store) Assignments(teamID, playerID, seasonID string) []model.RosterAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.rosters[rosterKey{teamID: teamID, playerID: playerID, seasonID: seasonID}]
	if len(src) == 0 {
		return nil
	}
	out := make([]model.RosterAssignment, len(src))
	copy(out, src)
	return out
}

// Counts reports how many entities of each kind are loaded.
func (s *Store) Counts() (seasons, teams, players, games, assignments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.rosters {
		assignments += len(v)
	}
	return len(s.seasons), len(s.teams), len(s.players), len(s.games), assignments
}
