// Package stats applies the action-to-metric classification and weighting
// rules that turn play events into a per-group stat line.
package stats

import (
	"strconv"
	"strings"

	"github.com/okian/gridiron/internal/domain/action"
	"github.com/okian/gridiron/internal/domain/model"
)

// defenseCategory is the statistical category tag that qualifies a
// touchdown as a defensive touchdown.
const defenseCategory = "defense"

// Yards converts the raw yards text of an event to a signed integer.
// Blank or non-numeric text contributes zero; a malformed yards value is
// never fatal to an aggregation pass.
func Yards(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Spreadsheet exports occasionally carry "7.0" style integers.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// Accumulate applies one play event to the line. The action must already
// be parsed; Unrecognized contributes to no metric so the taxonomy can
// grow without breaking older reporting runs.
//
// total_tackles is maintained on the same branches as the solo/assisted
// counters, so the union invariant holds by construction rather than by
// re-adding the two counts.
func Accumulate(l *model.StatLine, a action.Action, ev model.PlayEvent) {
	if !a.Known() {
		return
	}

	switch a {
	case action.PassComplete:
		l.PassingCompletions++
		l.PassingAttempts++
		l.PassingYards += Yards(ev.Yards)
		if ev.Touchdown {
			l.PassingTDs++
		}
	case action.PassIncomplete:
		l.PassingAttempts++
	case action.Rush:
		l.RushAttempts++
		l.RushingYards += Yards(ev.Yards)
		if ev.Touchdown {
			l.RushingTDs++
		}
	case action.PassTarget:
		l.Targets++
	case action.Catch:
		l.Targets++
		l.Catches++
		l.ReceivingYards += Yards(ev.Yards)
		if ev.Touchdown {
			l.ReceivingTDs++
		}
	case action.Tackle:
		l.SoloTackles++
		l.TotalTackles++
	case action.TackleAssist:
		l.AssistedTackles++
		l.TotalTackles++
	case action.Sack:
		l.SoloTackles++
		l.TotalTackles++
		l.Sacks += ev.SackWeight
		l.TacklesForLoss += ev.SackWeight
	case action.SackAssist:
		l.AssistedTackles++
		l.TotalTackles++
		l.Sacks += ev.SackWeight
		l.TacklesForLoss += ev.SackWeight
	case action.TackleForLoss, action.TackleForLossAssist:
		l.TacklesForLoss++
	case action.Deflection:
		l.Deflections++
	case action.Interception:
		l.Interceptions++
	case action.FieldGoalAttempt:
		l.FGAttempts++
	case action.FieldGoalMade:
		l.FGAttempts++
		l.FGMade++
	case action.PATAttempt:
		l.PATAttempts++
	case action.PATMade:
		l.PATAttempts++
		l.PATMade++
	case action.Punt:
		l.Punts++
		l.PuntYards += Yards(ev.Yards)
	case action.KickReturn:
		l.KickReturns++
		l.KickReturnYards += Yards(ev.Yards)
	case action.PuntReturn:
		l.PuntReturns++
		l.PuntReturnYards += Yards(ev.Yards)
	}

	// Flag-driven metrics apply across the whole taxonomy.
	if ev.Touchdown && strings.EqualFold(strings.TrimSpace(ev.Category), defenseCategory) {
		l.DefensiveTDs++
	}
	if ev.Safety {
		l.Safeties++
	}
}
