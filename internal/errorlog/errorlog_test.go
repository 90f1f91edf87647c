package errorlog

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ErrorLog{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := NewService(db, log)
	svc.backoffUnit = time.Millisecond
	return svc
}

func TestHandleInfoAlwaysRecovers(t *testing.T) {
	svc := setupService(t)
	ok := svc.Handle(AppError{Code: "SYNC_SKIPPED", Message: "nothing to sync", Severity: SeverityInfo})
	require.True(t, ok)
}

func TestHandleWarningRetriesOnce(t *testing.T) {
	svc := setupService(t)

	calls := 0
	ok := svc.Handle(AppError{
		Code:     "SLOT_SAVE",
		Message:  "save failed",
		Severity: SeverityWarning,
		Retry: func() error {
			calls++
			return nil
		},
	})
	require.True(t, ok)
	require.Equal(t, 1, calls)

	// Without a retry hook a warning is unrecovered.
	require.False(t, svc.Handle(AppError{Code: "SLOT_SAVE", Message: "save failed", Severity: SeverityWarning}))
}

func TestHandleErrorBacksOff(t *testing.T) {
	svc := setupService(t)

	calls := 0
	ok := svc.Handle(AppError{
		Code:     "DB_WRITE",
		Message:  "write failed",
		Severity: SeverityError,
		Retry: func() error {
			calls++
			if calls < 3 {
				return errors.New("still failing")
			}
			return nil
		},
	})
	require.True(t, ok)
	require.Equal(t, 3, calls)
}

func TestHandleErrorGivesUpAfterThree(t *testing.T) {
	svc := setupService(t)

	calls := 0
	ok := svc.Handle(AppError{
		Code:     "DB_WRITE",
		Message:  "write failed",
		Severity: SeverityError,
		Retry: func() error {
			calls++
			return errors.New("permanent")
		},
	})
	require.False(t, ok)
	require.Equal(t, 3, calls)
}

func TestHandleCriticalNotifiesAdmin(t *testing.T) {
	svc := setupService(t)

	var notified *AppError
	svc.SetAdminNotifier(func(e AppError) { notified = &e })

	ok := svc.Handle(AppError{Code: "DATA_LOSS", Message: "scoring sweep failed", Severity: SeverityCritical})
	require.False(t, ok)
	require.NotNil(t, notified)
	require.Equal(t, "DATA_LOSS", notified.Code)
}

func TestRegisteredHandlerOverridesSeverity(t *testing.T) {
	svc := setupService(t)

	svc.RegisterHandler("KNOWN_GLITCH", func(AppError) bool { return true })

	// Critical would normally be unrecovered; the handler wins.
	ok := svc.Handle(AppError{Code: "KNOWN_GLITCH", Message: "glitch", Severity: SeverityCritical})
	require.True(t, ok)
}

func TestHandlePersistsAndRecent(t *testing.T) {
	svc := setupService(t)

	svc.Handle(AppError{
		Code:     "FIRST",
		Message:  "first error",
		Severity: SeverityInfo,
		Context:  map[string]interface{}{"week": 4},
	})
	svc.Handle(AppError{Code: "SECOND", Message: "second error", Severity: SeverityInfo})

	logs, err := svc.Recent(10)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	var first ErrorLog
	require.NoError(t, svc.db.Where("code = ?", "FIRST").First(&first).Error)
	require.Equal(t, "info", first.Severity)
	require.Contains(t, first.Context, `"week":4`)
}
