// Package action defines the closed play-action taxonomy and its parser.
//
// Action names arrive as free text from upstream ingestion and the set is
// expected to grow, so Parse is total: anything outside the known set maps
// to Unrecognized, which contributes to no counter and is never an error.
package action

import "strings"

// Action is one recognized play action.
type Action int

// Known actions, plus the explicit Unrecognized variant.
const (
	Unrecognized Action = iota
	PassComplete
	PassIncomplete
	Rush
	PassTarget
	Catch
	Tackle
	TackleAssist
	Sack
	SackAssist
	TackleForLoss
	TackleForLossAssist
	Deflection
	Interception
	FieldGoalAttempt
	FieldGoalMade
	PATAttempt
	PATMade
	Punt
	KickReturn
	PuntReturn
)

// names maps each known action to its canonical upstream spelling.
var names = map[Action]string{
	PassComplete:        "Pass Complete",
	PassIncomplete:      "Pass Incomplete",
	Rush:                "Rush",
	PassTarget:          "Pass Target",
	Catch:               "Catch",
	Tackle:              "Tackle",
	TackleAssist:        "Tackle Assist",
	Sack:                "Sack",
	SackAssist:          "Sack Assist",
	TackleForLoss:       "Tackle For Loss",
	TackleForLossAssist: "Tackle For Loss Assist",
	Deflection:          "Deflection",
	Interception:        "Interception",
	FieldGoalAttempt:    "Field Goal Attempt",
	FieldGoalMade:       "Field Goal Made",
	PATAttempt:          "PAT Attempt",
	PATMade:             "PAT Made",
	Punt:                "Punt",
	KickReturn:          "Kick Return",
	PuntReturn:          "Punt Return",
}

// byName is the case-folded reverse index used by Parse.
var byName = func() map[string]Action {
	m := make(map[string]Action, len(names))
	for a, n := range names {
		m[strings.ToLower(n)] = a
	}
	return m
}()

// Parse maps a raw action name to its Action. Matching trims surrounding
// whitespace and is case-insensitive. Unknown names yield Unrecognized.
func Parse(name string) Action {
	a, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Unrecognized
	}
	return a
}

// String returns the canonical upstream spelling, or "Unrecognized".
func (a Action) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return "Unrecognized"
}

// Known reports whether a is part of the recognized taxonomy.
func (a Action) Known() bool {
	_, ok := names[a]
	return ok
}
