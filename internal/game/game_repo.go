package game

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("game not found")
	ErrHasPredictions  = errors.New("game has predictions")
	ErrAlreadyFinished = errors.New("game already finished")
)

// GameRepository defines all database operations for game management.
type GameRepository interface {
	Create(g *Game) error
	GetByID(id uint) (*Game, error)
	GetAll(filters map[string]interface{}) ([]Game, error)
	GetByWeek(week int) ([]Game, error)
	Update(g *Game) error
	SetLocked(id uint, locked bool) error
	Delete(id uint) error
	// SetResult finishes the game and runs the scoring sweep in one
	// transaction: correct predictions earn a point, and every predicting
	// user's counters are updated.
	SetResult(id uint, result Outcome) error
	PredictionCount(id uint) (int64, error)
}

type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(g *Game) error {
	return r.db.Create(g).Error
}

func (r *gameRepository) GetByID(id uint) (*Game, error) {
	var g Game
	if err := r.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *gameRepository) GetAll(filters map[string]interface{}) ([]Game, error) {
	query := r.db.Model(&Game{})

	if week, ok := filters["week"]; ok {
		query = query.Where("week = ?", week)
	}
	if finished, ok := filters["isfinished"]; ok {
		query = query.Where("isfinished = ?", finished)
	}
	if league, ok := filters["league"]; ok {
		query = query.Where("league = ?", league)
	}

	var games []Game
	if err := query.Order("date ASC, time ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) GetByWeek(week int) ([]Game, error) {
	return r.GetAll(map[string]interface{}{"week": week})
}

func (r *gameRepository) Update(g *Game) error {
	return r.db.Save(g).Error
}

func (r *gameRepository) SetLocked(id uint, locked bool) error {
	result := r.db.Model(&Game{}).Where("id = ?", id).Update("islocked", locked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PredictionCount reports how many live predictions reference the game.
func (r *gameRepository) PredictionCount(id uint) (int64, error) {
	var count int64
	err := r.db.Table("predictions").
		Where("game_id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count, err
}

// Delete removes a game, refusing while predictions still reference it.
func (r *gameRepository) Delete(id uint) error {
	count, err := r.PredictionCount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasPredictions
	}

	result := r.db.Delete(&Game{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gameRepository) SetResult(id uint, result Outcome) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var g Game
		if err := tx.First(&g, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if g.IsFinished {
			return ErrAlreadyFinished
		}

		if err := tx.Model(&Game{}).Where("id = ?", id).Updates(map[string]interface{}{
			"isfinished": true,
			"result":     result,
			"updated_at": time.Now(),
		}).Error; err != nil {
			return err
		}

		// Score the game's predictions: one point per correct pick.
		if err := tx.Exec(
			`UPDATE predictions
			    SET points = CASE WHEN prediction = ? THEN 1 ELSE 0 END
			  WHERE game_id = ? AND deleted_at IS NULL`,
			result, id,
		).Error; err != nil {
			return err
		}

		// Every predicting user played this game.
		if err := tx.Exec(
			`UPDATE users
			    SET total_predictions = total_predictions + 1
			  WHERE id IN (SELECT user_id FROM predictions
			                WHERE game_id = ? AND deleted_at IS NULL)`,
			id,
		).Error; err != nil {
			return err
		}

		// Correct guessers earn a point on every scoreboard.
		return tx.Exec(
			`UPDATE users
			    SET points = points + 1,
			        weekly_points = weekly_points + 1,
			        monthly_points = monthly_points + 1,
			        correct_predictions = correct_predictions + 1
			  WHERE id IN (SELECT user_id FROM predictions
			                WHERE game_id = ? AND prediction = ? AND deleted_at IS NULL)`,
			id, result,
		).Error
	})
}
