package game_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goalpool/internal/game"
	"goalpool/internal/prediction"
	"goalpool/internal/user"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&game.Game{}, &prediction.Prediction{}, &user.User{}))
	return db
}

func seedGame(t *testing.T, db *gorm.DB, week int) *game.Game {
	t.Helper()
	g := &game.Game{
		HomeTeam:    "מכבי חיפה",
		AwayTeam:    "הפועל באר שבע",
		Time:        "20:00",
		Date:        time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		League:      "ליגת העל",
		ClosingTime: time.Date(2026, 9, 5, 19, 0, 0, 0, time.UTC),
		Week:        week,
	}
	require.NoError(t, db.Create(g).Error)
	return g
}

func seedUser(t *testing.T, db *gorm.DB, code string) *user.User {
	t.Helper()
	u := &user.User{Name: "שחקן " + code, PlayerCode: code, Status: user.StatusActive}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestGameRepositoryCRUD(t *testing.T) {
	db := setupDB(t)
	repo := game.NewGameRepository(db)

	g := seedGame(t, db, 4)

	got, err := repo.GetByID(g.ID)
	require.NoError(t, err)
	require.Equal(t, "מכבי חיפה", got.HomeTeam)

	_, err = repo.GetByID(9999)
	require.ErrorIs(t, err, game.ErrNotFound)

	got.League = "גביע המדינה"
	require.NoError(t, repo.Update(got))

	updated, err := repo.GetByID(g.ID)
	require.NoError(t, err)
	require.Equal(t, "גביע המדינה", updated.League)
}

func TestGameRepositoryFilters(t *testing.T) {
	db := setupDB(t)
	repo := game.NewGameRepository(db)

	seedGame(t, db, 1)
	seedGame(t, db, 1)
	seedGame(t, db, 2)

	week1, err := repo.GetByWeek(1)
	require.NoError(t, err)
	require.Len(t, week1, 2)

	all, err := repo.GetAll(nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	finished, err := repo.GetAll(map[string]interface{}{"isfinished": true})
	require.NoError(t, err)
	require.Empty(t, finished)
}

func TestGameRepositorySetLocked(t *testing.T) {
	db := setupDB(t)
	repo := game.NewGameRepository(db)
	g := seedGame(t, db, 1)

	require.NoError(t, repo.SetLocked(g.ID, true))

	got, err := repo.GetByID(g.ID)
	require.NoError(t, err)
	require.True(t, got.IsLocked)

	require.ErrorIs(t, repo.SetLocked(9999, true), game.ErrNotFound)
}

func TestGameRepositoryDeleteGuard(t *testing.T) {
	db := setupDB(t)
	repo := game.NewGameRepository(db)

	g := seedGame(t, db, 1)
	u := seedUser(t, db, "12345678")
	require.NoError(t, db.Create(&prediction.Prediction{
		UserID: u.ID, GameID: g.ID, Prediction: "1", Timestamp: time.Now(),
	}).Error)

	require.ErrorIs(t, repo.Delete(g.ID), game.ErrHasPredictions)

	// With the prediction gone the delete goes through.
	require.NoError(t, db.Exec("DELETE FROM predictions WHERE game_id = ?", g.ID).Error)
	require.NoError(t, repo.Delete(g.ID))
	_, err := repo.GetByID(g.ID)
	require.ErrorIs(t, err, game.ErrNotFound)
}

func TestGameRepositorySetResultScoring(t *testing.T) {
	db := setupDB(t)
	repo := game.NewGameRepository(db)

	g := seedGame(t, db, 1)
	winner := seedUser(t, db, "11111111")
	loser := seedUser(t, db, "22222222")
	bystander := seedUser(t, db, "33333333")

	for _, p := range []*prediction.Prediction{
		{UserID: winner.ID, GameID: g.ID, Prediction: "1", Timestamp: time.Now()},
		{UserID: loser.ID, GameID: g.ID, Prediction: "X", Timestamp: time.Now()},
	} {
		require.NoError(t, db.Create(p).Error)
	}

	require.NoError(t, repo.SetResult(g.ID, game.OutcomeHome))

	got, err := repo.GetByID(g.ID)
	require.NoError(t, err)
	require.True(t, got.IsFinished)
	require.Equal(t, game.OutcomeHome, got.Result)

	var winnerRow, loserRow, bystanderRow user.User
	require.NoError(t, db.First(&winnerRow, winner.ID).Error)
	require.NoError(t, db.First(&loserRow, loser.ID).Error)
	require.NoError(t, db.First(&bystanderRow, bystander.ID).Error)

	require.Equal(t, 1, winnerRow.Points)
	require.Equal(t, 1, winnerRow.WeeklyPoints)
	require.Equal(t, 1, winnerRow.MonthlyPoints)
	require.Equal(t, 1, winnerRow.CorrectPredictions)
	require.Equal(t, 1, winnerRow.TotalPredictions)

	require.Equal(t, 0, loserRow.Points)
	require.Equal(t, 0, loserRow.CorrectPredictions)
	require.Equal(t, 1, loserRow.TotalPredictions)

	require.Equal(t, 0, bystanderRow.Points)
	require.Equal(t, 0, bystanderRow.TotalPredictions)

	var winnerPick prediction.Prediction
	require.NoError(t, db.Where("user_id = ? AND game_id = ?", winner.ID, g.ID).First(&winnerPick).Error)
	require.Equal(t, 1, winnerPick.Points)

	// Re-entering a result for a finished game is refused.
	require.ErrorIs(t, repo.SetResult(g.ID, game.OutcomeAway), game.ErrAlreadyFinished)

	// And the refusal left the scoreboard untouched.
	require.NoError(t, db.First(&winnerRow, winner.ID).Error)
	require.Equal(t, 1, winnerRow.Points)
}

func TestGameRepositorySetResultUnknownGame(t *testing.T) {
	db := setupDB(t)
	repo := game.NewGameRepository(db)
	require.ErrorIs(t, repo.SetResult(404, game.OutcomeDraw), game.ErrNotFound)
}
