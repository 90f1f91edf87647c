package user

import (
	"gorm.io/gorm"

	"goalpool/internal/permission"
)

// Status gates login and prediction submission.
type Status string

const (
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

// User is a pool participant. The playercode is both the login credential
// and the display handle; points columns are maintained by the scoring sweep
// when game results come in.
type User struct {
	gorm.Model
	Name       string          `json:"name" gorm:"not null"`
	PlayerCode string          `json:"playercode" gorm:"column:playercode;uniqueIndex;not null"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	City       string          `json:"city,omitempty"`
	Role       permission.Role `json:"role" gorm:"default:'user'"`
	Status     Status          `json:"status" gorm:"default:'active'"`
	// PasswordHash is set only for admin accounts, which confirm a password
	// on top of their playercode when entering admin mode.
	PasswordHash string `json:"-"`

	Points             int `json:"points" gorm:"default:0"`
	WeeklyPoints       int `json:"weekly_points" gorm:"default:0"`
	MonthlyPoints      int `json:"monthly_points" gorm:"default:0"`
	CorrectPredictions int `json:"correct_predictions" gorm:"default:0"`
	TotalPredictions   int `json:"total_predictions" gorm:"default:0"`
}

// Blocked reports whether the user may not log in or predict.
func (u *User) Blocked() bool {
	return u.Status == StatusBlocked
}
