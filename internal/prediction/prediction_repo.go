package prediction

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("prediction not found")

// PredictionRepository defines all database operations for predictions.
type PredictionRepository interface {
	// Upsert inserts the prediction or, when the user already predicted this
	// game, updates the pick and timestamp in place. One atomic statement:
	// the (user_id, game_id) unique index plus ON CONFLICT closes the
	// double-submission race a lookup-then-write would leave open.
	Upsert(p *Prediction) error
	GetByUserAndGame(userID, gameID uint) (*Prediction, error)
	GetByUser(userID uint) ([]Prediction, error)
	GetByGame(gameID uint) ([]Prediction, error)
	Delete(id uint) error
}

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a new prediction repository.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Upsert(p *Prediction) error {
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"prediction", "timestamp", "updated_at"}),
	}).Create(p).Error
	if err != nil {
		return err
	}
	// On the conflict path the struct still carries the attempted insert's
	// ID and timestamps; reload so callers echo the surviving row.
	return r.db.Where("user_id = ? AND game_id = ?", p.UserID, p.GameID).First(p).Error
}

func (r *predictionRepository) GetByUserAndGame(userID, gameID uint) (*Prediction, error) {
	var p Prediction
	err := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *predictionRepository) GetByUser(userID uint) ([]Prediction, error) {
	var predictions []Prediction
	err := r.db.Where("user_id = ?", userID).Order("timestamp DESC").Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) GetByGame(gameID uint) ([]Prediction, error) {
	var predictions []Prediction
	err := r.db.Where("game_id = ?", gameID).Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) Delete(id uint) error {
	result := r.db.Delete(&Prediction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
