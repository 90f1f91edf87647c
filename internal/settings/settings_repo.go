package settings

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// SettingsRepository defines the operations on the global settings row.
type SettingsRepository interface {
	// Get returns the singleton row, creating it with defaults on first use.
	Get() (*Settings, error)
	// Update writes currentday and week. Single-row update, last write wins.
	Update(currentDay string, week int) error
	// RollDay sets currentday from the wall clock and stamps lastreset.
	// Returns true when the day actually changed.
	RollDay(now time.Time) (bool, error)
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get() (*Settings, error) {
	var s Settings
	err := r.db.Where("id = ?", GlobalID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = Settings{ID: GlobalID, CurrentDay: "sunday", Week: 1}
		if err := r.db.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Update(currentDay string, week int) error {
	if _, err := r.Get(); err != nil {
		return err
	}
	return r.db.Model(&Settings{}).Where("id = ?", GlobalID).Updates(map[string]interface{}{
		"currentday": currentDay,
		"week":       week,
	}).Error
}

func (r *settingsRepository) RollDay(now time.Time) (bool, error) {
	s, err := r.Get()
	if err != nil {
		return false, err
	}

	today := DayName(now)
	if s.CurrentDay == today {
		return false, nil
	}

	err = r.db.Model(&Settings{}).Where("id = ?", GlobalID).Updates(map[string]interface{}{
		"currentday": today,
		"lastreset":  now,
	}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}
