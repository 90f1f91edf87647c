package weekly

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"goalpool/internal/errorlog"
	"goalpool/pkg/responses"
	"goalpool/pkg/validation"
)

// SlotController handles the weekly schedule HTTP requests.
type SlotController struct {
	repo   SlotRepository
	errSvc *errorlog.Service
}

// NewSlotController creates a new weekly slot controller.
func NewSlotController(repo SlotRepository, errSvc *errorlog.Service) *SlotController {
	return &SlotController{repo: repo, errSvc: errSvc}
}

func parseWeekDay(ctx *gin.Context) (int, string, bool) {
	week, err := strconv.Atoi(ctx.Param("week"))
	if err != nil || week < 1 || week > 38 {
		responses.BadRequest(ctx, "מספר שבוע לא תקין")
		return 0, "", false
	}
	day := ctx.Param("day")
	if !validation.IsDayName(day) {
		responses.BadRequest(ctx, "יום לא תקין")
		return 0, "", false
	}
	return week, day, true
}

// GetDay godoc
// @Summary Get the schedule for one day of a week
// @Tags weekly-games
// @Produce json
// @Param week path int true "Week number (1-38)"
// @Param day path string true "Day name (sunday..saturday)"
// @Success 200 {object} responses.Envelope
// @Router /weekly-games/{week}/{day} [get]
func (c *SlotController) GetDay(ctx *gin.Context) {
	week, day, ok := parseWeekDay(ctx)
	if !ok {
		return
	}

	slot, err := c.repo.GetByWeekAndDay(week, day)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// No slot yet means an empty schedule, not a failure.
			responses.SendSuccess(ctx, http.StatusOK, "", Slot{Week: week, Day: day, Games: []SlotGame{}})
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", slot)
}

// GetWeek godoc
// @Summary Get the full schedule of a week
// @Tags weekly-games
// @Produce json
// @Param week path int true "Week number (1-38)"
// @Success 200 {object} responses.Envelope
// @Router /weekly-games/{week} [get]
func (c *SlotController) GetWeek(ctx *gin.Context) {
	week, err := strconv.Atoi(ctx.Param("week"))
	if err != nil || week < 1 || week > 38 {
		responses.BadRequest(ctx, "מספר שבוע לא תקין")
		return
	}

	slots, err := c.repo.GetByWeek(week)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", slots)
}

// SaveDay godoc
// @Summary Replace the schedule for one day of a week
// @Description Validates each entry, enforces the 3-game cap and the
// @Description duplicate-pair rule, then upserts the (week, day) slot.
// @Tags weekly-games
// @Accept json
// @Produce json
// @Param week path int true "Week number (1-38)"
// @Param day path string true "Day name (sunday..saturday)"
// @Param games body []validation.WeeklyGameInput true "Games for the day"
// @Success 200 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope "Validation, MAX_GAMES_REACHED or GAME_ALREADY_EXISTS"
// @Router /admin/weekly-games/{week}/{day} [put]
// @Security Bearer
func (c *SlotController) SaveDay(ctx *gin.Context) {
	week, day, ok := parseWeekDay(ctx)
	if !ok {
		return
	}

	var inputs []validation.WeeklyGameInput
	if err := ctx.ShouldBindJSON(&inputs); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	slot := &Slot{Week: week, Day: day, Games: []SlotGame{}}
	for i := range inputs {
		in := inputs[i]
		in.Week = week
		in.Day = day

		result := validation.ValidateWeeklyGame(in)
		if !result.Success {
			responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", result.Errors)
			return
		}

		closing, _ := validation.ParseDateTime(in.ClosingTime)
		entry := SlotGame{
			ID:             uuid.NewString(),
			GameID:         in.GameID,
			HomeTeam:       in.HomeTeam,
			AwayTeam:       in.AwayTeam,
			Time:           in.Time,
			League:         in.League,
			ClosingTime:    closing,
			ManuallyLocked: in.ManuallyLocked,
		}

		if err := slot.AppendGame(entry); err != nil {
			switch {
			case errors.Is(err, ErrMaxGamesReached):
				responses.SendValidationErrors(ctx, "לא ניתן להוסיף יותר משלושה משחקים ליום", map[string]string{
					"games": ErrMaxGamesReached.Error(),
				})
			case errors.Is(err, ErrGameAlreadyExists):
				responses.SendValidationErrors(ctx, "המשחק כבר קיים ביום זה", map[string]string{
					"games": ErrGameAlreadyExists.Error(),
				})
			default:
				responses.InternalServerError(ctx, "")
			}
			return
		}
	}

	if err := c.repo.Save(slot); err != nil {
		c.errSvc.Handle(errorlog.AppError{
			Code:     "WEEKLY_GAMES_UPDATE_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"week": week, "day": day, "games": len(slot.Games)},
			Retry:    func() error { return c.repo.Save(slot) },
		})
		responses.InternalServerError(ctx, "שגיאה בעדכון המשחקים השבועיים")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "המשחקים השבועיים עודכנו בהצלחה", slot)
}

// SyncWeek godoc
// @Summary Refresh denormalized game fields for a week's schedule
// @Tags weekly-games
// @Produce json
// @Param week path int true "Week number (1-38)"
// @Success 200 {object} responses.Envelope
// @Router /admin/weekly-games/{week}/sync [post]
// @Security Bearer
func (c *SlotController) SyncWeek(ctx *gin.Context) {
	week, err := strconv.Atoi(ctx.Param("week"))
	if err != nil || week < 1 || week > 38 {
		responses.BadRequest(ctx, "מספר שבוע לא תקין")
		return
	}

	if err := c.repo.SyncWeek(week); err != nil {
		c.errSvc.Handle(errorlog.AppError{
			Code:     "WEEKLY_GAMES_SYNC_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"week": week},
			Retry:    func() error { return c.repo.SyncWeek(week) },
		})
		responses.InternalServerError(ctx, "שגיאה בסנכרון המשחקים השבועיים")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "המשחקים השבועיים סונכרנו בהצלחה", nil)
}
