// Package sqlite persists and loads the season snapshot a run works
// from: reference entities plus the raw play event rows. The file is a
// plain SQLite database so seasons can be seeded once and aggregated
// many times.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/okian/gridiron/internal/domain/model"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS seasons (
  id   TEXT PRIMARY KEY,
  year INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS teams (
  id   TEXT PRIMARY KEY,
  name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS players (
  id         TEXT PRIMARY KEY,
  first_name TEXT NOT NULL,
  last_name  TEXT NOT NULL,
  height_in  INTEGER NOT NULL,
  weight_lb  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS games (
  id        TEXT PRIMARY KEY,
  season_id TEXT NOT NULL,
  week      INTEGER NOT NULL,
  game_date TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS team_rosters (
  id         TEXT PRIMARY KEY,
  team_id    TEXT NOT NULL,
  player_id  TEXT NOT NULL,
  season_id  TEXT NOT NULL,
  position1  TEXT NOT NULL DEFAULT '',
  position2  TEXT NOT NULL DEFAULT '',
  position3  TEXT NOT NULL DEFAULT '',
  jersey     TEXT NOT NULL DEFAULT '',
  start_date TEXT NOT NULL,
  end_date   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_team_rosters_key
  ON team_rosters (team_id, player_id, season_id);
CREATE TABLE IF NOT EXISTS play_events (
  id          TEXT PRIMARY KEY,
  game_id     TEXT NOT NULL,
  team_id     TEXT NOT NULL,
  player_id   TEXT NOT NULL,
  action      TEXT NOT NULL,
  yards       TEXT NOT NULL DEFAULT '',
  touchdown   INTEGER NOT NULL DEFAULT 0,
  safety      INTEGER NOT NULL DEFAULT 0,
  category    TEXT NOT NULL DEFAULT '',
  sack_weight REAL NOT NULL DEFAULT 0
);
`

// Store persists the season snapshot in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a snapshot store and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSeason upserts one season record.
func (s *Store) PutSeason(ctx context.Context, season model.Season) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO seasons (id, year) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET year = excluded.year`,
		season.ID, season.Year,
	)
	if err != nil {
		return fmt.Errorf("put season: %w", err)
	}
	return nil
}

// PutTeam upserts one team record.
func (s *Store) PutTeam(ctx context.Context, team model.Team) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO teams (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		team.ID, team.Name,
	)
	if err != nil {
		return fmt.Errorf("put team: %w", err)
	}
	return nil
}

// PutPlayer upserts one player record.
func (s *Store) PutPlayer(ctx context.Context, player model.Player) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO players (id, first_name, last_name, height_in, weight_lb)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   first_name = excluded.first_name,
		   last_name  = excluded.last_name,
		   height_in  = excluded.height_in,
		   weight_lb  = excluded.weight_lb`,
		player.ID, player.FirstName, player.LastName, player.HeightIn, player.WeightLb,
	)
	if err != nil {
		return fmt.Errorf("put player: %w", err)
	}
	return nil
}

// PutGame upserts one game record. Dates are stored as ISO text.
func (s *Store) PutGame(ctx context.Context, game model.Game) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO games (id, season_id, week, game_date) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   season_id = excluded.season_id,
		   week      = excluded.week,
		   game_date = excluded.game_date`,
		game.ID, game.SeasonID, game.Week, game.Date.Format(model.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("put game: %w", err)
	}
	return nil
}

// PutAssignment upserts one roster assignment record.
func (s *Store) PutAssignment(ctx context.Context, a model.RosterAssignment) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO team_rosters
		   (id, team_id, player_id, season_id, position1, position2, position3, jersey, start_date, end_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   team_id    = excluded.team_id,
		   player_id  = excluded.player_id,
		   season_id  = excluded.season_id,
		   position1  = excluded.position1,
		   position2  = excluded.position2,
		   position3  = excluded.position3,
		   jersey     = excluded.jersey,
		   start_date = excluded.start_date,
		   end_date   = excluded.end_date`,
		a.ID, a.TeamID, a.PlayerID, a.SeasonID,
		a.Positions[0], a.Positions[1], a.Positions[2],
		a.Jersey,
		a.Start.Format(model.DateLayout), a.End.Format(model.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("put roster assignment: %w", err)
	}
	return nil
}

// AppendEvent inserts one play event row. A second insert with the same
// ID is ignored, matching the log's at-most-once semantics.
func (s *Store) AppendEvent(ctx context.Context, ev model.PlayEvent) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO play_events
		   (id, game_id, team_id, player_id, action, yards, touchdown, safety, category, sack_weight)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		ev.EventID, ev.GameID, ev.TeamID, ev.PlayerID,
		ev.ActionName, ev.Yards,
		boolToInt(ev.Touchdown), boolToInt(ev.Safety),
		ev.Category, ev.SackWeight,
	)
	if err != nil {
		return fmt.Errorf("append play event: %w", err)
	}
	return nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return ErrNotConfigured
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return t, nil
}
