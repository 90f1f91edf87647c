package game

import (
	"time"

	"goalpool/pkg/validation"
)

// RulePolicy selects how strict the game business rules are. Creation uses
// the strict policy; updates use the default one, since result entry and
// lock toggles legitimately touch games whose kickoff has passed.
type RulePolicy int

const (
	// PolicyDefault checks closing-before-kickoff and distinct teams.
	PolicyDefault RulePolicy = iota
	// PolicyRejectPastDates additionally requires a future kickoff.
	PolicyRejectPastDates
)

// CheckGameRules runs the cross-field business rules over an already
// shape-validated game input. Pure: no I/O, the caller supplies the clock.
func CheckGameRules(in validation.GameInput, policy RulePolicy, now time.Time) validation.RuleResult {
	errs := make(map[string]string)

	date, dateOK := validation.ParseDateTime(in.Date)
	closing, closingOK := validation.ParseDateTime(in.ClosingTime)

	if dateOK && closingOK {
		kickoff := CombineDateTime(date, in.Time)
		if !closing.Before(kickoff) {
			errs["closingtime"] = "זמן הסגירה חייב להיות לפני תאריך המשחק"
		}
		if policy == PolicyRejectPastDates && kickoff.Before(now) {
			errs["date"] = "תאריך המשחק חייב להיות עתידי"
		}
	}

	if in.HomeTeam == in.AwayTeam {
		errs["awayteam"] = "קבוצת החוץ חייבת להיות שונה מקבוצת הבית"
	}

	if len(errs) > 0 {
		return validation.RuleResult{Success: false, Errors: errs}
	}
	return validation.RuleResult{Success: true}
}
