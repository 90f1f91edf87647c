package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validGameInput() GameInput {
	return GameInput{
		HomeTeam:    "מכבי חיפה",
		AwayTeam:    "הפועל באר שבע",
		Time:        "20:30",
		Date:        "2026-09-05",
		League:      "ליגת העל",
		ClosingTime: "2026-09-05T19:30:00",
		Week:        3,
	}
}

func TestValidateGame(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameInput)
		wantOK  bool
		wantKey string
	}{
		{
			name:   "valid game",
			mutate: func(in *GameInput) {},
			wantOK: true,
		},
		{
			name:    "missing home team",
			mutate:  func(in *GameInput) { in.HomeTeam = "" },
			wantKey: "hometeam",
		},
		{
			name:    "missing away team",
			mutate:  func(in *GameInput) { in.AwayTeam = "" },
			wantKey: "awayteam",
		},
		{
			name:    "bad time format",
			mutate:  func(in *GameInput) { in.Time = "25:99" },
			wantKey: "time",
		},
		{
			name:    "time without leading zero",
			mutate:  func(in *GameInput) { in.Time = "9:30" },
			wantKey: "time",
		},
		{
			name:    "unparseable date",
			mutate:  func(in *GameInput) { in.Date = "05/09/2026" },
			wantKey: "date",
		},
		{
			name:    "missing league",
			mutate:  func(in *GameInput) { in.League = "" },
			wantKey: "league",
		},
		{
			name:    "bad closing time",
			mutate:  func(in *GameInput) { in.ClosingTime = "not a date" },
			wantKey: "closingtime",
		},
		{
			name:    "negative week",
			mutate:  func(in *GameInput) { in.Week = -1 },
			wantKey: "week",
		},
		{
			name:    "bad result value",
			mutate:  func(in *GameInput) { in.Result = "3" },
			wantKey: "result",
		},
		{
			name:   "result X accepted",
			mutate: func(in *GameInput) { in.Result = "X" },
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validGameInput()
			tt.mutate(&in)

			res := ValidateGame(in)
			if tt.wantOK {
				assert.True(t, res.Success)
				assert.Empty(t, res.Errors)
				return
			}
			assert.False(t, res.Success)
			assert.Contains(t, res.Errors, tt.wantKey)
			assert.NotEmpty(t, res.Errors[tt.wantKey])
		})
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		in      UserInput
		wantOK  bool
		wantKey string
	}{
		{
			name:   "valid user",
			in:     UserInput{Name: "דני לוי", PlayerCode: "12345678", Phone: "0501234567"},
			wantOK: true,
		},
		{
			name:   "nine digit playercode",
			in:     UserInput{Name: "דני לוי", PlayerCode: "123456789"},
			wantOK: true,
		},
		{
			name:    "playercode too short",
			in:      UserInput{Name: "דני לוי", PlayerCode: "123"},
			wantKey: "playercode",
		},
		{
			name:    "playercode with letters",
			in:      UserInput{Name: "דני לוי", PlayerCode: "1234567a"},
			wantKey: "playercode",
		},
		{
			name:    "single character name",
			in:      UserInput{Name: "ד", PlayerCode: "12345678"},
			wantKey: "name",
		},
		{
			name:    "phone without leading zero",
			in:      UserInput{Name: "דני לוי", PlayerCode: "12345678", Phone: "501234567"},
			wantKey: "phone",
		},
		{
			name:    "bad email",
			in:      UserInput{Name: "דני לוי", PlayerCode: "12345678", Email: "not-an-email"},
			wantKey: "email",
		},
		{
			name:    "unknown role",
			in:      UserInput{Name: "דני לוי", PlayerCode: "12345678", Role: "owner"},
			wantKey: "role",
		},
		{
			name:    "unknown status",
			in:      UserInput{Name: "דני לוי", PlayerCode: "12345678", Status: "paused"},
			wantKey: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateUser(tt.in)
			if tt.wantOK {
				assert.True(t, res.Success)
				return
			}
			assert.False(t, res.Success)
			assert.Contains(t, res.Errors, tt.wantKey)
		})
	}
}

func TestValidatePrediction(t *testing.T) {
	tests := []struct {
		name    string
		in      PredictionInput
		wantOK  bool
		wantKey string
	}{
		{name: "home win", in: PredictionInput{UserID: 1, GameID: 2, Prediction: "1"}, wantOK: true},
		{name: "draw", in: PredictionInput{UserID: 1, GameID: 2, Prediction: "X"}, wantOK: true},
		{name: "away win", in: PredictionInput{UserID: 1, GameID: 2, Prediction: "2"}, wantOK: true},
		{name: "lowercase x rejected", in: PredictionInput{UserID: 1, GameID: 2, Prediction: "x"}, wantKey: "prediction"},
		{name: "score rejected", in: PredictionInput{UserID: 1, GameID: 2, Prediction: "2:1"}, wantKey: "prediction"},
		{name: "missing game", in: PredictionInput{UserID: 1, Prediction: "1"}, wantKey: "gameid"},
		{name: "missing user", in: PredictionInput{GameID: 2, Prediction: "1"}, wantKey: "userid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidatePrediction(tt.in)
			if tt.wantOK {
				assert.True(t, res.Success)
				return
			}
			assert.False(t, res.Success)
			assert.Contains(t, res.Errors, tt.wantKey)
		})
	}
}

func TestValidateWeeklyGame(t *testing.T) {
	valid := WeeklyGameInput{
		Day:         "sunday",
		Week:        5,
		HomeTeam:    "מכבי תל אביב",
		AwayTeam:    "בית\"ר ירושלים",
		Time:        "19:00",
		League:      "ליגת העל",
		ClosingTime: "2026-09-06T18:00:00",
	}

	res := ValidateWeeklyGame(valid)
	assert.True(t, res.Success)

	bad := valid
	bad.Day = "yom rishon"
	res = ValidateWeeklyGame(bad)
	assert.False(t, res.Success)
	assert.Contains(t, res.Errors, "day")

	bad = valid
	bad.Week = 39
	res = ValidateWeeklyGame(bad)
	assert.False(t, res.Success)
	assert.Contains(t, res.Errors, "week")
}

func TestParseDateTime(t *testing.T) {
	accepted := []string{
		"2026-09-05T19:30:00Z",
		"2026-09-05T19:30:00",
		"2026-09-05 19:30:00",
		"2026-09-05",
	}
	for _, s := range accepted {
		_, ok := ParseDateTime(s)
		assert.True(t, ok, "expected %q to parse", s)
	}

	rejected := []string{"", "05/09/2026", "2026-13-40", "tomorrow"}
	for _, s := range rejected {
		_, ok := ParseDateTime(s)
		assert.False(t, ok, "expected %q to fail", s)
	}
}

func TestIsDayName(t *testing.T) {
	for _, day := range []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		assert.True(t, IsDayName(day))
	}
	assert.False(t, IsDayName("Sunday"))
	assert.False(t, IsDayName("shabbat"))
	assert.False(t, IsDayName(""))
}
