// Package validation holds the schema validators for every entity the pool
// persists. Validators never return a Go error for malformed input: they
// return a discriminated Result so handlers can branch on Success and send
// the Errors map to the UI as-is, keyed by the offending field.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Result is the envelope every schema validator returns. Errors maps a
// stable field key (the lowercase column name, e.g. "hometeam") to a
// human-readable Hebrew message.
type Result struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// RuleResult is the envelope business-rule checks return. Unlike Result it
// carries no Data: rules gate already-validated input, they do not transform.
type RuleResult struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors"`
}

var (
	timePattern       = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	playerCodePattern = regexp.MustCompile(`^\d{8,9}$`)
	phonePattern      = regexp.MustCompile(`^0\d{8,9}$`)
)

// dateLayouts are the formats accepted for date/datetime fields. Form inputs
// send plain dates, the admin panel sends full RFC3339 timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime parses a date or datetime string in any accepted layout.
func ParseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Error keys must match the json field names the UI binds messages to.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return timePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("dateparse", func(fl validator.FieldLevel) bool {
		_, ok := ParseDateTime(fl.Field().String())
		return ok
	})
	v.RegisterValidation("playercode", func(fl validator.FieldLevel) bool {
		return playerCodePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("ilphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("outcome", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "1" || s == "X" || s == "2"
	})
	v.RegisterValidation("dayname", func(fl validator.FieldLevel) bool {
		_, ok := dayNames[fl.Field().String()]
		return ok
	})

	return v
}

var dayNames = map[string]struct{}{
	"sunday": {}, "monday": {}, "tuesday": {}, "wednesday": {},
	"thursday": {}, "friday": {}, "saturday": {},
}

// IsDayName reports whether s is one of the seven canonical lowercase day names.
func IsDayName(s string) bool {
	_, ok := dayNames[s]
	return ok
}

// GameInput is the shape expected when creating or updating a game.
type GameInput struct {
	HomeTeam    string `json:"hometeam" validate:"required"`
	AwayTeam    string `json:"awayteam" validate:"required"`
	Time        string `json:"time" validate:"required,hhmm"`
	Date        string `json:"date" validate:"required,dateparse"`
	League      string `json:"league" validate:"required"`
	ClosingTime string `json:"closingtime" validate:"required,dateparse"`
	Week        int    `json:"week" validate:"omitempty,gt=0"`
	IsFinished  bool   `json:"isfinished"`
	IsLocked    bool   `json:"islocked"`
	Result      string `json:"result" validate:"omitempty,outcome"`
}

// WeeklyGameInput is one schedule entry submitted by the weekly-games editor.
// day and week are mandatory here, unlike GameInput.
type WeeklyGameInput struct {
	Day            string `json:"day" validate:"required,dayname"`
	Week           int    `json:"week" validate:"required,gt=0,lte=38"`
	GameID         *uint  `json:"game_id" validate:"omitempty"`
	HomeTeam       string `json:"hometeam" validate:"required"`
	AwayTeam       string `json:"awayteam" validate:"required"`
	Time           string `json:"time" validate:"required,hhmm"`
	League         string `json:"league" validate:"required"`
	ClosingTime    string `json:"closingtime" validate:"required,dateparse"`
	ManuallyLocked bool   `json:"manuallylocked"`
}

// PredictionInput is a 1/X/2 submission for a single game.
type PredictionInput struct {
	UserID     uint   `json:"userid" validate:"required"`
	GameID     uint   `json:"gameid" validate:"required"`
	Prediction string `json:"prediction" validate:"required,outcome"`
}

// UserInput is the shape expected when creating or updating a user.
type UserInput struct {
	Name       string `json:"name" validate:"required,min=2"`
	PlayerCode string `json:"playercode" validate:"required,playercode"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,ilphone"`
	City       string `json:"city"`
	Role       string `json:"role" validate:"omitempty,oneof=user admin super-admin"`
	Status     string `json:"status" validate:"omitempty,oneof=active blocked"`
}

// ValidateGame checks a game's shape and field formats.
func ValidateGame(in GameInput) Result {
	return run(in)
}

// ValidateWeeklyGame checks a weekly schedule entry.
func ValidateWeeklyGame(in WeeklyGameInput) Result {
	return run(in)
}

// ValidatePrediction checks a prediction submission.
func ValidatePrediction(in PredictionInput) Result {
	return run(in)
}

// ValidateUser checks a user record.
func ValidateUser(in UserInput) Result {
	return run(in)
}

func run(in interface{}) Result {
	if err := validate.Struct(in); err != nil {
		return Result{Success: false, Errors: formatErrors(err)}
	}
	return Result{Success: true, Data: in}
}

func formatErrors(err error) map[string]string {
	formatted := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		formatted["_general"] = "שגיאה לא ידועה בתיקוף הנתונים"
		return formatted
	}
	for _, fe := range ve {
		formatted[fe.Field()] = fieldMessage(fe.Field(), fe.Tag())
	}
	return formatted
}

// fieldMessage resolves the localized message for a failed field, mirroring
// the wording players and admins see in the UI.
func fieldMessage(field, tag string) string {
	switch field {
	case "hometeam":
		return "שם קבוצת הבית הוא שדה חובה"
	case "awayteam":
		return "שם קבוצת החוץ הוא שדה חובה"
	case "time":
		return "פורמט שעה לא תקין (HH:MM)"
	case "date":
		return "תאריך לא תקין"
	case "league":
		return "שם הליגה הוא שדה חובה"
	case "closingtime":
		return "זמן סגירה לא תקין"
	case "week":
		return "מספר שבוע חייב להיות מספר חיובי"
	case "day":
		return "יום לא תקין"
	case "prediction":
		return "ניחוש חייב להיות אחד מהערכים: 1, X, 2"
	case "result":
		return "תוצאה חייבת להיות אחת מהערכים: 1, X, 2"
	case "userid":
		return "מזהה משתמש לא תקין"
	case "gameid":
		return "מזהה משחק לא תקין"
	case "name":
		return "שם חייב להכיל לפחות 2 תווים"
	case "playercode":
		return "קוד שחקן חייב להכיל 8 או 9 ספרות"
	case "email":
		return "כתובת אימייל לא תקינה"
	case "phone":
		return "מספר טלפון לא תקין"
	case "role":
		return "תפקיד לא תקין"
	case "status":
		return "סטטוס לא תקין"
	}
	return "ערך לא תקין בשדה " + field + " (" + tag + ")"
}
