package weekly

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"goalpool/internal/game"
)

var ErrNotFound = errors.New("weekly slot not found")

// SlotRepository defines the database operations for the weekly schedule.
type SlotRepository interface {
	// Save upserts the slot for its (week, day) pair: the games list of an
	// existing row is replaced in place, otherwise a new row is inserted.
	Save(slot *Slot) error
	GetByWeekAndDay(week int, day string) (*Slot, error)
	GetByWeek(week int) ([]Slot, error)
	Delete(week int, day string) error
	// SyncWeek refreshes the denormalized display fields of every entry
	// that links a canonical game, for all slots of the week. Required
	// upkeep: without it edited games leave stale copies in the schedule.
	SyncWeek(week int) error
}

type slotRepository struct {
	db *gorm.DB
}

// NewSlotRepository creates a new weekly slot repository.
func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) Save(slot *Slot) error {
	var existing Slot
	err := r.db.Where("week = ? AND day = ?", slot.Week, slot.Day).First(&existing).Error
	switch {
	case err == nil:
		return r.db.Model(&existing).Update("games", slot.Games).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.Create(slot).Error
	default:
		return err
	}
}

func (r *slotRepository) GetByWeekAndDay(week int, day string) (*Slot, error) {
	var slot Slot
	err := r.db.Where("week = ? AND day = ?", week, day).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) GetByWeek(week int) ([]Slot, error) {
	var slots []Slot
	if err := r.db.Where("week = ?", week).Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) Delete(week int, day string) error {
	result := r.db.Where("week = ? AND day = ?", week, day).Delete(&Slot{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *slotRepository) SyncWeek(week int) error {
	slots, err := r.GetByWeek(week)
	if err != nil {
		return err
	}

	for i := range slots {
		slot := &slots[i]
		changed := false

		for j := range slot.Games {
			entry := &slot.Games[j]
			if entry.GameID == nil {
				continue
			}

			var g game.Game
			if err := r.db.First(&g, *entry.GameID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// The canonical game is gone; the denormalized copy
					// stays as the last known state.
					continue
				}
				return fmt.Errorf("sync week %d: fetching game %d: %w", week, *entry.GameID, err)
			}

			entry.HomeTeam = g.HomeTeam
			entry.AwayTeam = g.AwayTeam
			entry.Time = g.Time
			entry.League = g.League
			entry.ClosingTime = g.ClosingTime
			changed = true
		}

		if changed {
			if err := r.db.Model(slot).Update("games", slot.Games).Error; err != nil {
				return fmt.Errorf("sync week %d: saving slot %d/%s: %w", week, slot.Week, slot.Day, err)
			}
		}
	}
	return nil
}
