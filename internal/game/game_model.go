package game

import (
	"time"

	"gorm.io/gorm"
)

// Outcome is a 1/X/2 result: home win, draw, away win.
type Outcome string

const (
	OutcomeHome Outcome = "1"
	OutcomeDraw Outcome = "X"
	OutcomeAway Outcome = "2"
)

// ValidOutcome reports whether s is one of 1, X, 2.
func ValidOutcome(s string) bool {
	switch Outcome(s) {
	case OutcomeHome, OutcomeDraw, OutcomeAway:
		return true
	}
	return false
}

// Game is a single fixture players predict on. ClosingTime is the deadline
// after which predictions are rejected; IsLocked is the admin override that
// closes the game regardless of the clock.
type Game struct {
	gorm.Model
	HomeTeam    string    `json:"hometeam" gorm:"column:hometeam;not null"`
	AwayTeam    string    `json:"awayteam" gorm:"column:awayteam;not null"`
	Time        string    `json:"time" gorm:"not null"` // kickoff HH:MM
	Date        time.Time `json:"date" gorm:"index;not null"`
	League      string    `json:"league" gorm:"not null"`
	ClosingTime time.Time `json:"closingtime" gorm:"column:closingtime;index;not null"`
	Week        int       `json:"week" gorm:"index"`
	IsFinished  bool      `json:"isfinished" gorm:"column:isfinished;default:false"`
	IsLocked    bool      `json:"islocked" gorm:"column:islocked;default:false"`
	Result      Outcome   `json:"result,omitempty"`
}

// Kickoff combines Date and the HH:MM Time column into the full kickoff
// instant. A malformed Time column falls back to the bare date.
func (g *Game) Kickoff() time.Time {
	return CombineDateTime(g.Date, g.Time)
}

// CombineDateTime merges a date with an HH:MM clock string.
func CombineDateTime(date time.Time, hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location())
}

// Open reports whether predictions are currently accepted for the game.
// The closing time is exclusive: a submission at the exact deadline fails.
func (g *Game) Open(now time.Time) bool {
	return !g.IsLocked && !g.IsFinished && now.Before(g.ClosingTime)
}
