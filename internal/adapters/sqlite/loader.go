package sqlite

import (
	"context"
	"fmt"

	"github.com/okian/gridiron/internal/adapters/refdata"
	"github.com/okian/gridiron/internal/domain/model"
)

// LoadSnapshot reads the whole snapshot into memory: a populated
// reference data store plus the play events in row order.
func (s *Store) LoadSnapshot(ctx context.Context) (*refdata.Store, []model.PlayEvent, error) {
	if err := s.ready(ctx); err != nil {
		return nil, nil, err
	}

	ref := refdata.NewStore()
	if err := s.loadSeasons(ctx, ref); err != nil {
		return nil, nil, err
	}
	if err := s.loadTeams(ctx, ref); err != nil {
		return nil, nil, err
	}
	if err := s.loadPlayers(ctx, ref); err != nil {
		return nil, nil, err
	}
	if err := s.loadGames(ctx, ref); err != nil {
		return nil, nil, err
	}
	if err := s.loadAssignments(ctx, ref); err != nil {
		return nil, nil, err
	}

	events, err := s.loadEvents(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ref, events, nil
}

func (s *Store) loadSeasons(ctx context.Context, ref *refdata.Store) error {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, year FROM seasons`)
	if err != nil {
		return fmt.Errorf("query seasons: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var season model.Season
		if err := rows.Scan(&season.ID, &season.Year); err != nil {
			return fmt.Errorf("scan season: %w", err)
		}
		ref.AddSeason(season)
	}
	return rows.Err()
}

func (s *Store) loadTeams(ctx context.Context, ref *refdata.Store) error {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, name FROM teams`)
	if err != nil {
		return fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var team model.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return fmt.Errorf("scan team: %w", err)
		}
		ref.AddTeam(team)
	}
	return rows.Err()
}

func (s *Store) loadPlayers(ctx context.Context, ref *refdata.Store) error {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, first_name, last_name, height_in, weight_lb FROM players`)
	if err != nil {
		return fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var player model.Player
		if err := rows.Scan(&player.ID, &player.FirstName, &player.LastName,
			&player.HeightIn, &player.WeightLb); err != nil {
			return fmt.Errorf("scan player: %w", err)
		}
		ref.AddPlayer(player)
	}
	return rows.Err()
}

func (s *Store) loadGames(ctx context.Context, ref *refdata.Store) error {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, season_id, week, game_date FROM games`)
	if err != nil {
		return fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var game model.Game
		var date string
		if err := rows.Scan(&game.ID, &game.SeasonID, &game.Week, &date); err != nil {
			return fmt.Errorf("scan game: %w", err)
		}
		game.Date, err = parseDate(date)
		if err != nil {
			return fmt.Errorf("game %s: %w", game.ID, err)
		}
		ref.AddGame(game)
	}
	return rows.Err()
}

func (s *Store) loadAssignments(ctx context.Context, ref *refdata.Store) error {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, team_id, player_id, season_id,
		        position1, position2, position3, jersey, start_date, end_date
		 FROM team_rosters`)
	if err != nil {
		return fmt.Errorf("query team rosters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a model.RosterAssignment
		var start, end string
		if err := rows.Scan(&a.ID, &a.TeamID, &a.PlayerID, &a.SeasonID,
			&a.Positions[0], &a.Positions[1], &a.Positions[2],
			&a.Jersey, &start, &end); err != nil {
			return fmt.Errorf("scan roster assignment: %w", err)
		}
		a.Start, err = parseDate(start)
		if err != nil {
			return fmt.Errorf("roster assignment %s: %w", a.ID, err)
		}
		a.End, err = parseDate(end)
		if err != nil {
			return fmt.Errorf("roster assignment %s: %w", a.ID, err)
		}
		ref.AddAssignment(a)
	}
	return rows.Err()
}

func (s *Store) loadEvents(ctx context.Context) ([]model.PlayEvent, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, game_id, team_id, player_id, action, yards,
		        touchdown, safety, category, sack_weight
		 FROM play_events ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query play events: %w", err)
	}
	defer rows.Close()

	var events []model.PlayEvent
	for rows.Next() {
		var ev model.PlayEvent
		var touchdown, safety int
		if err := rows.Scan(&ev.EventID, &ev.GameID, &ev.TeamID, &ev.PlayerID,
			&ev.ActionName, &ev.Yards, &touchdown, &safety,
			&ev.Category, &ev.SackWeight); err != nil {
			return nil, fmt.Errorf("scan play event: %w", err)
		}
		ev.Touchdown = touchdown != 0
		ev.Safety = safety != 0
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
