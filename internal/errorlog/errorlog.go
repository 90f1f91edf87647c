// Package errorlog is the application error service: every non-validation
// failure flows through it so it is logged, persisted to the error_logs
// table, and optionally retried. The service is an injected dependency, not
// a process-wide singleton, so its consumers stay testable in isolation.
package errorlog

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Severity classifies an AppError and selects the recovery strategy.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// AppError is a structured application error.
type AppError struct {
	Code      string
	Message   string
	Severity  Severity
	Timestamp time.Time
	Context   map[string]interface{}
	// Retry re-runs the failed operation. Optional.
	Retry func() error
}

// ErrorLog is the persisted form of an AppError.
type ErrorLog struct {
	gorm.Model
	Code     string `json:"code" gorm:"index;not null"`
	Message  string `json:"message" gorm:"type:text;not null"`
	Severity string `json:"severity" gorm:"index;not null"`
	Context  string `json:"context,omitempty" gorm:"type:text"`
}

// Handler is a per-code recovery hook. It returns true when the error was
// handled and the default severity strategy should be skipped.
type Handler func(AppError) bool

// Service logs, persists and recovers application errors.
type Service struct {
	db       *gorm.DB
	log      *logrus.Logger
	handlers map[string]Handler
	// notifyAdmin is invoked for critical errors. Replaceable in tests.
	notifyAdmin func(AppError)
	// backoffUnit spaces out retries for SeverityError. Shortened in tests.
	backoffUnit time.Duration
}

// NewService creates an error service writing to the given DB and logger.
func NewService(db *gorm.DB, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		db:          db,
		log:         log,
		handlers:    make(map[string]Handler),
		notifyAdmin: func(AppError) {},
		backoffUnit: time.Second,
	}
}

// RegisterHandler installs a recovery hook for a specific error code.
func (s *Service) RegisterHandler(code string, h Handler) {
	s.handlers[code] = h
}

// SetAdminNotifier replaces the critical-error notification hook.
func (s *Service) SetAdminNotifier(fn func(AppError)) {
	if fn != nil {
		s.notifyAdmin = fn
	}
}

// Handle logs and persists the error, then applies the recovery strategy for
// its severity. It reports whether the error was recovered.
func (s *Service) Handle(e AppError) bool {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	s.logError(e)
	s.persist(e)

	if h, ok := s.handlers[e.Code]; ok {
		return h(e)
	}

	switch e.Severity {
	case SeverityInfo:
		return true
	case SeverityWarning:
		return s.retryOnce(e)
	case SeverityError:
		return s.retryWithBackoff(e)
	case SeverityCritical:
		s.notifyAdmin(e)
		return false
	}
	return false
}

// Recent returns the latest persisted errors, newest first. Used by the
// admin panel's error-log viewer.
func (s *Service) Recent(limit int) ([]ErrorLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []ErrorLog
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *Service) logError(e AppError) {
	s.log.WithFields(logrus.Fields{
		"code":     e.Code,
		"severity": e.Severity,
		"context":  e.Context,
	}).Error(e.Message)
}

func (s *Service) persist(e AppError) {
	var ctx string
	if e.Context != nil {
		if b, err := json.Marshal(e.Context); err == nil {
			ctx = string(b)
		}
	}
	record := ErrorLog{
		Code:     e.Code,
		Message:  e.Message,
		Severity: string(e.Severity),
		Context:  ctx,
	}
	if err := s.db.Create(&record).Error; err != nil {
		// The error log must never take the request down with it.
		s.log.WithError(err).Warn("failed to persist error log")
	}
}

func (s *Service) retryOnce(e AppError) bool {
	if e.Retry == nil {
		return false
	}
	return e.Retry() == nil
}

func (s *Service) retryWithBackoff(e AppError) bool {
	if e.Retry == nil {
		return false
	}
	for i := 0; i < 3; i++ {
		time.Sleep(time.Duration(i+1) * s.backoffUnit)
		if err := e.Retry(); err == nil {
			return true
		}
		s.log.WithField("code", e.Code).Infof("retry %d failed", i+1)
	}
	return false
}
