package weekly

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MaxGamesPerDay is the hard cap on games a single day's slot may hold.
const MaxGamesPerDay = 3

var (
	// ErrMaxGamesReached: the day already holds MaxGamesPerDay games.
	ErrMaxGamesReached = errors.New("MAX_GAMES_REACHED")
	// ErrGameAlreadyExists: the same (hometeam, awayteam) pair is already
	// scheduled on this day. Identity is the team pair, not the row id,
	// because slot entries are denormalized copies.
	ErrGameAlreadyExists = errors.New("GAME_ALREADY_EXISTS")
)

// SlotGame is one denormalized schedule entry inside a day's slot. GameID
// links back to the canonical Game row when the entry was picked from the
// games table; the display fields are copies refreshed by SyncWeek.
type SlotGame struct {
	ID             string    `json:"id"`
	GameID         *uint     `json:"game_id,omitempty"`
	HomeTeam       string    `json:"hometeam"`
	AwayTeam       string    `json:"awayteam"`
	Time           string    `json:"time"`
	League         string    `json:"league"`
	ClosingTime    time.Time `json:"closingtime"`
	ManuallyLocked bool      `json:"manuallylocked"`
}

// Slot is the schedule for one (week, day) pair: up to MaxGamesPerDay games.
// Exactly one row exists per pair; saves upsert the games list in place.
type Slot struct {
	gorm.Model
	Week  int        `json:"week" gorm:"uniqueIndex:idx_weekly_games_week_day;not null"`
	Day   string     `json:"day" gorm:"uniqueIndex:idx_weekly_games_week_day;not null"`
	Games []SlotGame `json:"games" gorm:"serializer:json"`
}

// TableName keeps the table name the rest of the system knows.
func (Slot) TableName() string {
	return "weekly_games"
}

// AppendGame adds a candidate entry to the slot, enforcing the capacity cap
// and rejecting duplicates by team pair. The two failures are distinct
// errors so the editor can render a precise message.
func (s *Slot) AppendGame(entry SlotGame) error {
	if len(s.Games) >= MaxGamesPerDay {
		return ErrMaxGamesReached
	}
	for _, existing := range s.Games {
		if existing.HomeTeam == entry.HomeTeam && existing.AwayTeam == entry.AwayTeam {
			return ErrGameAlreadyExists
		}
	}
	s.Games = append(s.Games, entry)
	return nil
}
