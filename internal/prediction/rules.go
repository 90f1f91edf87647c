package prediction

import (
	"time"

	"goalpool/internal/game"
	"goalpool/pkg/validation"
)

// CheckPredictionRules gates a submission against the referenced game's
// current state. Pure: the caller fetches the game and supplies the clock.
// Both checks run; either can surface, keyed on gameid.
func CheckPredictionRules(g *game.Game, now time.Time) validation.RuleResult {
	errs := make(map[string]string)

	if g.IsLocked || g.IsFinished {
		errs["gameid"] = "לא ניתן לנחש משחק שננעל או הסתיים"
	}

	// The deadline is exclusive: a submission at the exact closing time fails.
	if !now.Before(g.ClosingTime) {
		errs["gameid"] = "זמן הניחוש למשחק זה הסתיים"
	}

	if len(errs) > 0 {
		return validation.RuleResult{Success: false, Errors: errs}
	}
	return validation.RuleResult{Success: true}
}
