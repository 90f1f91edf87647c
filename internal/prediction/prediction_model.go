package prediction

import (
	"time"

	"gorm.io/gorm"
)

// Prediction is one user's 1/X/2 pick for one game. The (user, game) pair is
// unique: resubmission updates the existing row. Points stay 0 until the
// scoring sweep runs when the game result is entered.
type Prediction struct {
	gorm.Model
	UserID     uint      `json:"userid" gorm:"uniqueIndex:idx_predictions_user_game;not null"`
	GameID     uint      `json:"gameid" gorm:"uniqueIndex:idx_predictions_user_game;not null"`
	Prediction string    `json:"prediction" gorm:"not null"`
	Points     int       `json:"points" gorm:"default:0"`
	Timestamp  time.Time `json:"timestamp"`
}
