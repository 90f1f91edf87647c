package prediction

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Prediction{}))
	return db
}

func TestUpsertIdempotentResubmission(t *testing.T) {
	db := setupDB(t)
	repo := NewPredictionRepository(db)

	first := &Prediction{UserID: 7, GameID: 3, Prediction: "1"}
	require.NoError(t, repo.Upsert(first))

	// Same user, same game, changed pick: the row is updated, not duplicated.
	second := &Prediction{UserID: 7, GameID: 3, Prediction: "X"}
	require.NoError(t, repo.Upsert(second))

	var count int64
	require.NoError(t, db.Model(&Prediction{}).Where("user_id = ? AND game_id = ?", 7, 3).Count(&count).Error)
	require.EqualValues(t, 1, count)

	got, err := repo.GetByUserAndGame(7, 3)
	require.NoError(t, err)
	require.Equal(t, "X", got.Prediction)

	// The resubmitted struct reflects the surviving row, not the attempted
	// insert.
	require.Equal(t, first.ID, second.ID)
	require.True(t, second.CreatedAt.Equal(first.CreatedAt))
}

func TestUpsertStampsTimestamp(t *testing.T) {
	db := setupDB(t)
	repo := NewPredictionRepository(db)

	p := &Prediction{UserID: 1, GameID: 1, Prediction: "2"}
	before := time.Now().Add(-time.Second)
	require.NoError(t, repo.Upsert(p))

	got, err := repo.GetByUserAndGame(1, 1)
	require.NoError(t, err)
	require.True(t, got.Timestamp.After(before))
}

func TestUpsertDifferentGamesCoexist(t *testing.T) {
	db := setupDB(t)
	repo := NewPredictionRepository(db)

	require.NoError(t, repo.Upsert(&Prediction{UserID: 7, GameID: 1, Prediction: "1"}))
	require.NoError(t, repo.Upsert(&Prediction{UserID: 7, GameID: 2, Prediction: "2"}))
	require.NoError(t, repo.Upsert(&Prediction{UserID: 8, GameID: 1, Prediction: "X"}))

	mine, err := repo.GetByUser(7)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	byGame, err := repo.GetByGame(1)
	require.NoError(t, err)
	require.Len(t, byGame, 2)
}

func TestGetByUserAndGameNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewPredictionRepository(db)

	_, err := repo.GetByUserAndGame(99, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	repo := NewPredictionRepository(db)

	p := &Prediction{UserID: 1, GameID: 1, Prediction: "1"}
	require.NoError(t, repo.Upsert(p))
	require.NoError(t, repo.Delete(p.ID))

	_, err := repo.GetByUserAndGame(1, 1)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, repo.Delete(9999), ErrNotFound)
}
