package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"goalpool/pkg/validation"
)

var rulesNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func ruleInput() validation.GameInput {
	return validation.GameInput{
		HomeTeam:    "מכבי חיפה",
		AwayTeam:    "הפועל תל אביב",
		Time:        "20:00",
		Date:        "2026-09-05",
		League:      "ליגת העל",
		ClosingTime: "2026-09-05T19:00:00",
	}
}

func TestCheckGameRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*validation.GameInput)
		policy  RulePolicy
		wantOK  bool
		wantKey string
	}{
		{
			name:   "valid game default policy",
			mutate: func(in *validation.GameInput) {},
			policy: PolicyDefault,
			wantOK: true,
		},
		{
			name:   "valid game strict policy",
			mutate: func(in *validation.GameInput) {},
			policy: PolicyRejectPastDates,
			wantOK: true,
		},
		{
			name: "closing after kickoff",
			mutate: func(in *validation.GameInput) {
				in.ClosingTime = "2026-09-05T21:00:00"
			},
			policy:  PolicyDefault,
			wantKey: "closingtime",
		},
		{
			name: "closing equal to kickoff",
			mutate: func(in *validation.GameInput) {
				in.ClosingTime = "2026-09-05T20:00:00"
			},
			policy:  PolicyDefault,
			wantKey: "closingtime",
		},
		{
			name: "home equals away",
			mutate: func(in *validation.GameInput) {
				in.AwayTeam = in.HomeTeam
			},
			policy:  PolicyDefault,
			wantKey: "awayteam",
		},
		{
			name: "past kickoff rejected under strict policy",
			mutate: func(in *validation.GameInput) {
				in.Date = "2026-08-20"
				in.ClosingTime = "2026-08-20T19:00:00"
			},
			policy:  PolicyRejectPastDates,
			wantKey: "date",
		},
		{
			name: "past kickoff allowed under default policy",
			mutate: func(in *validation.GameInput) {
				in.Date = "2026-08-20"
				in.ClosingTime = "2026-08-20T19:00:00"
			},
			policy: PolicyDefault,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ruleInput()
			tt.mutate(&in)

			res := CheckGameRules(in, tt.policy, rulesNow)
			if tt.wantOK {
				assert.True(t, res.Success)
				assert.Empty(t, res.Errors)
				return
			}
			assert.False(t, res.Success)
			assert.Contains(t, res.Errors, tt.wantKey)
		})
	}
}

func TestCheckGameRulesCollectsAll(t *testing.T) {
	in := ruleInput()
	in.AwayTeam = in.HomeTeam
	in.ClosingTime = "2026-09-05T23:00:00"

	res := CheckGameRules(in, PolicyDefault, rulesNow)
	assert.False(t, res.Success)
	assert.Contains(t, res.Errors, "awayteam")
	assert.Contains(t, res.Errors, "closingtime")
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	combined := CombineDateTime(date, "20:30")
	assert.Equal(t, time.Date(2026, 9, 5, 20, 30, 0, 0, time.UTC), combined)

	// Malformed clock falls back to the bare date.
	assert.Equal(t, date, CombineDateTime(date, "garbage"))
}

func TestGameOpen(t *testing.T) {
	closing := time.Date(2026, 9, 5, 19, 0, 0, 0, time.UTC)
	g := Game{ClosingTime: closing}

	assert.True(t, g.Open(closing.Add(-time.Minute)))
	// The deadline itself is already closed.
	assert.False(t, g.Open(closing))
	assert.False(t, g.Open(closing.Add(time.Minute)))

	locked := Game{ClosingTime: closing, IsLocked: true}
	assert.False(t, locked.Open(closing.Add(-time.Hour)))

	finished := Game{ClosingTime: closing, IsFinished: true}
	assert.False(t, finished.Open(closing.Add(-time.Hour)))
}

func TestValidOutcome(t *testing.T) {
	assert.True(t, ValidOutcome("1"))
	assert.True(t, ValidOutcome("X"))
	assert.True(t, ValidOutcome("2"))
	assert.False(t, ValidOutcome("x"))
	assert.False(t, ValidOutcome("0"))
	assert.False(t, ValidOutcome(""))
}
