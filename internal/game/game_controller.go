package game

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"goalpool/internal/errorlog"
	"goalpool/pkg/responses"
	"goalpool/pkg/validation"
)

// GameController handles game-related HTTP requests.
type GameController struct {
	repo   GameRepository
	errSvc *errorlog.Service
}

// NewGameController creates a new game controller.
func NewGameController(repo GameRepository, errSvc *errorlog.Service) *GameController {
	return &GameController{repo: repo, errSvc: errSvc}
}

func gameFromInput(in validation.GameInput) *Game {
	date, _ := validation.ParseDateTime(in.Date)
	closing, _ := validation.ParseDateTime(in.ClosingTime)
	return &Game{
		HomeTeam:    in.HomeTeam,
		AwayTeam:    in.AwayTeam,
		Time:        in.Time,
		Date:        date,
		League:      in.League,
		ClosingTime: closing,
		Week:        in.Week,
		IsFinished:  in.IsFinished,
		IsLocked:    in.IsLocked,
		Result:      Outcome(in.Result),
	}
}

// CreateGame godoc
// @Summary Create a new game
// @Description Create a fixture. Closing time must precede kickoff and the
// @Description kickoff must be in the future.
// @Tags games
// @Accept json
// @Produce json
// @Param game body validation.GameInput true "Game information"
// @Success 201 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope "Validation or business-rule errors"
// @Router /admin/games [post]
// @Security Bearer
func (c *GameController) CreateGame(ctx *gin.Context) {
	var input validation.GameInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	result := validation.ValidateGame(input)
	if !result.Success {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", result.Errors)
		return
	}

	rules := CheckGameRules(input, PolicyRejectPastDates, time.Now())
	if !rules.Success {
		responses.SendValidationErrors(ctx, "שגיאה בבדיקות העסקיות", rules.Errors)
		return
	}

	g := gameFromInput(input)
	if err := c.repo.Create(g); err != nil {
		c.errSvc.Handle(errorlog.AppError{
			Code:     "GAME_CREATE_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"hometeam": input.HomeTeam, "awayteam": input.AwayTeam},
		})
		responses.InternalServerError(ctx, "שגיאה בהוספת משחק")
		return
	}

	responses.SendSuccess(ctx, http.StatusCreated, "המשחק נוסף בהצלחה", g)
}

// GetGame godoc
// @Summary Get game by ID
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} responses.Envelope
// @Failure 404 {object} responses.Envelope
// @Router /games/{game_id} [get]
func (c *GameController) GetGame(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("game_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משחק לא תקין")
		return
	}

	g, err := c.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(ctx, "המשחק לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", g)
}

// ListGames godoc
// @Summary List games
// @Tags games
// @Produce json
// @Param week query int false "Filter by week"
// @Param finished query boolean false "Filter by finished state"
// @Param league query string false "Filter by league"
// @Success 200 {object} responses.Envelope
// @Router /games [get]
func (c *GameController) ListGames(ctx *gin.Context) {
	filters := make(map[string]interface{})

	if weekStr := ctx.Query("week"); weekStr != "" {
		week, err := strconv.Atoi(weekStr)
		if err != nil {
			responses.BadRequest(ctx, "מספר שבוע לא תקין")
			return
		}
		filters["week"] = week
	}
	if finishedStr := ctx.Query("finished"); finishedStr != "" {
		finished, err := strconv.ParseBool(finishedStr)
		if err != nil {
			responses.BadRequest(ctx, "ערך finished לא תקין")
			return
		}
		filters["isfinished"] = finished
	}
	if league := ctx.Query("league"); league != "" {
		filters["league"] = league
	}

	games, err := c.repo.GetAll(filters)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", games)
}

// UpdateGame godoc
// @Summary Update a game
// @Description Updates a fixture. Past kickoffs are allowed here, unlike
// @Description creation, so results and locks can be edited after the fact.
// @Tags games
// @Accept json
// @Produce json
// @Param game_id path int true "Game ID"
// @Param game body validation.GameInput true "Updated game information"
// @Success 200 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope
// @Router /admin/games/{game_id} [put]
// @Security Bearer
func (c *GameController) UpdateGame(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("game_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משחק לא תקין")
		return
	}

	var input validation.GameInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	result := validation.ValidateGame(input)
	if !result.Success {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", result.Errors)
		return
	}

	rules := CheckGameRules(input, PolicyDefault, time.Now())
	if !rules.Success {
		responses.SendValidationErrors(ctx, "שגיאה בבדיקות העסקיות", rules.Errors)
		return
	}

	g, err := c.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(ctx, "המשחק לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	updated := gameFromInput(input)
	updated.ID = g.ID
	updated.CreatedAt = g.CreatedAt

	if err := c.repo.Update(updated); err != nil {
		c.errSvc.Handle(errorlog.AppError{
			Code:     "GAME_UPDATE_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"game_id": id},
		})
		responses.InternalServerError(ctx, "שגיאה בעדכון משחק")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "המשחק עודכן בהצלחה", updated)
}

// SetLock godoc
// @Summary Manually lock or unlock a game for predictions
// @Tags games
// @Accept json
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} responses.Envelope
// @Router /admin/games/{game_id}/lock [put]
// @Security Bearer
func (c *GameController) SetLock(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("game_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משחק לא תקין")
		return
	}

	var body struct {
		Locked bool `json:"locked"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	if err := c.repo.SetLocked(uint(id), body.Locked); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(ctx, "המשחק לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "מצב הנעילה עודכן", nil)
}

// SetResult godoc
// @Summary Set a game result and score its predictions
// @Description Marks the game finished, stores the result, awards a point
// @Description to every correct prediction and updates user counters.
// @Tags games
// @Accept json
// @Produce json
// @Success 200 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope "Invalid result or game already finished"
// @Router /admin/games/results [post]
// @Security Bearer
func (c *GameController) SetResult(ctx *gin.Context) {
	var body struct {
		GameID uint   `json:"gameId"`
		Result string `json:"result"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	if body.GameID == 0 {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", map[string]string{
			"gameid": "מזהה משחק לא תקין",
		})
		return
	}
	if !ValidOutcome(body.Result) {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", map[string]string{
			"result": "תוצאה חייבת להיות אחת מהערכים: 1, X, 2",
		})
		return
	}

	if err := c.repo.SetResult(body.GameID, Outcome(body.Result)); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			responses.NotFound(ctx, "המשחק לא נמצא")
		case errors.Is(err, ErrAlreadyFinished):
			responses.BadRequest(ctx, "המשחק כבר הסתיים ולא ניתן לעדכן את התוצאה")
		default:
			c.errSvc.Handle(errorlog.AppError{
				Code:     "GAME_SET_RESULT_ERROR",
				Message:  err.Error(),
				Severity: errorlog.SeverityError,
				Context:  map[string]interface{}{"game_id": body.GameID, "result": body.Result},
			})
			responses.InternalServerError(ctx, "שגיאה בעדכון תוצאת משחק")
		}
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "תוצאת המשחק עודכנה בהצלחה", nil)
}

// DeleteGame godoc
// @Summary Delete a game
// @Description Refuses while predictions reference the game.
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} responses.Envelope
// @Failure 409 {object} responses.Envelope "Game has predictions"
// @Router /admin/games/{game_id} [delete]
// @Security Bearer
func (c *GameController) DeleteGame(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("game_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משחק לא תקין")
		return
	}

	if err := c.repo.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			responses.NotFound(ctx, "המשחק לא נמצא")
		case errors.Is(err, ErrHasPredictions):
			responses.Conflict(ctx, "לא ניתן למחוק משחק שיש עליו ניחושים")
		default:
			responses.InternalServerError(ctx, "שגיאה במחיקת משחק")
		}
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "המשחק נמחק בהצלחה", nil)
}
