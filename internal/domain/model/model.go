// Package model contains domain models passed between layers.
package model

import "time"

// RosterEndSentinel marks the currently active roster assignment.
// Upstream data encodes "no end date yet" as 9999-12-31; the value is
// preserved here for compatibility with records already written that way.
var RosterEndSentinel = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// DateLayout is the civil-date format used for game dates and roster
// validity bounds throughout the snapshot.
const DateLayout = "2006-01-02"

// Season identifies one calendar-year season. Immutable once created.
type Season struct {
	ID   string
	Year int
}

// Team is a participating team. Created on first reference, never deleted.
type Team struct {
	ID   string
	Name string
}

// Player carries biographical reference data. A player referenced by play
// events may not be registered yet; lookups must treat absence as normal.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	HeightIn  int // inches
	WeightLb  int // pounds
}

// RosterAssignment is a player's team/position/jersey record valid over
// [Start, End). End equal to RosterEndSentinel means currently active.
type RosterAssignment struct {
	ID        string
	TeamID    string
	PlayerID  string
	SeasonID  string
	Positions [3]string // slot order is meaningful
	Jersey    string    // raw spreadsheet-derived text, e.g. "12.0"
	Start     time.Time
	End       time.Time
}

// Active reports whether this assignment is the open-ended current record.
func (r RosterAssignment) Active() bool {
	return r.End.Equal(RosterEndSentinel)
}

// Game is one scheduled game. Owned by schedule data; immutable after
// creation except for date corrections.
type Game struct {
	ID       string
	SeasonID string
	Week     int
	Date     time.Time
}

// PlayEvent is the atomic fact: one recorded action within a game.
// Events are immutable once recorded; the aggregation engine only reads
// them.
type PlayEvent struct {
	EventID    string
	GameID     string // required; an event without a resolvable game is a data error
	TeamID     string
	PlayerID   string // empty when the player is not yet registered
	ActionName string // raw action text, matched against the taxonomy
	Yards      string // raw text; blank or non-numeric contributes zero to sums
	Touchdown  bool
	Safety     bool
	Category   string // statistical category tag, e.g. "Defense"
	SackWeight float64
}

// GroupKey identifies one summary row: the distinct
// (season year, week, game date, team, player) combination.
type GroupKey struct {
	SeasonYear int
	Week       int
	GameDate   string // DateLayout form; keeps the key comparable
	TeamID     string
	PlayerID   string
}

// StatLine holds every derived metric for one group. Field order follows
// the export column catalogue; names are a stable downstream contract.
type StatLine struct {
	PassingCompletions int
	PassingAttempts    int
	PassingTDs         int
	PassingYards       int

	RushAttempts int
	RushingYards int
	RushingTDs   int

	Targets        int
	Catches        int
	ReceivingYards int
	ReceivingTDs   int

	SoloTackles     int
	AssistedTackles int
	TotalTackles    int
	Sacks           float64
	TacklesForLoss  float64
	Deflections     int
	Interceptions   int
	DefensiveTDs    int
	Safeties        int

	FGAttempts  int
	FGMade      int
	PATAttempts int
	PATMade     int

	Punts     int
	PuntYards int

	KickReturns     int
	KickReturnYards int
	PuntReturns     int
	PuntReturnYards int
}

// SummaryRow is one aggregated statistics record for a single player,
// team, week and season. Roster and biographical fields stay blank when
// the corresponding reference data is absent; the row itself is driven
// only by play event existence.
type SummaryRow struct {
	Key GroupKey

	TeamName  string
	FirstName string
	LastName  string
	HeightIn  int
	WeightLb  int

	Jersey   string // normalized whole number, or "" when unknown
	Position string // formatted slot list, e.g. "WR, KR"

	Line StatLine
}
