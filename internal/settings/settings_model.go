package settings

import (
	"time"
)

// GlobalID is the fixed primary key of the singleton settings row.
const GlobalID = "global"

// Settings is the single global row steering the player-facing UI: which
// day's games are highlighted and which week the pool is on. Concurrent
// writers (admin actions, the cron rollover) race with last-write-wins
// semantics, which is the intended behavior for this row.
type Settings struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	CurrentDay string    `json:"currentday" gorm:"column:currentday;not null;default:'sunday'"`
	Week       int       `json:"week" gorm:"not null;default:1"`
	LastReset  time.Time `json:"lastreset" gorm:"column:lastreset"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DayName returns the lowercase English day name for a wall-clock instant.
func DayName(t time.Time) string {
	switch t.Weekday() {
	case time.Sunday:
		return "sunday"
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	default:
		return "saturday"
	}
}
