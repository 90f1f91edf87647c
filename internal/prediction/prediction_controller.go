package prediction

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"goalpool/internal/errorlog"
	"goalpool/internal/game"
	"goalpool/internal/middleware"
	"goalpool/internal/permission"
	"goalpool/pkg/responses"
	"goalpool/pkg/validation"
)

// PredictionController handles prediction-related HTTP requests.
type PredictionController struct {
	repo   PredictionRepository
	games  game.GameRepository
	errSvc *errorlog.Service
}

// NewPredictionController creates a new prediction controller.
func NewPredictionController(repo PredictionRepository, games game.GameRepository, errSvc *errorlog.Service) *PredictionController {
	return &PredictionController{repo: repo, games: games, errSvc: errSvc}
}

// Submit godoc
// @Summary Submit or change a prediction
// @Description Validates the pick, gates it against the game's lock state
// @Description and closing time, then upserts: a resubmission updates the
// @Description existing row, never creating a second one.
// @Tags predictions
// @Accept json
// @Produce json
// @Param prediction body validation.PredictionInput true "Prediction"
// @Success 200 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope "Validation or business-rule errors"
// @Failure 404 {object} responses.Envelope "Game not found"
// @Router /predictions [post]
// @Security Bearer
func (c *PredictionController) Submit(ctx *gin.Context) {
	var input validation.PredictionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	// Players submit for themselves; only admins may submit for others.
	authUserID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}
	if input.UserID == 0 {
		input.UserID = authUserID
	}
	if input.UserID != authUserID &&
		!permission.Has(permission.RoleFromContext(ctx), permission.EditPredictions) {
		responses.Forbidden(ctx, "")
		return
	}

	result := validation.ValidatePrediction(input)
	if !result.Success {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", result.Errors)
		return
	}

	g, err := c.games.GetByID(input.GameID)
	if err != nil {
		if errors.Is(err, game.ErrNotFound) {
			responses.NotFound(ctx, "המשחק לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	rules := CheckPredictionRules(g, time.Now())
	if !rules.Success {
		responses.SendValidationErrors(ctx, "שגיאה בבדיקות העסקיות", rules.Errors)
		return
	}

	p := &Prediction{
		UserID:     input.UserID,
		GameID:     input.GameID,
		Prediction: input.Prediction,
		Timestamp:  time.Now(),
	}
	if err := c.repo.Upsert(p); err != nil {
		c.errSvc.Handle(errorlog.AppError{
			Code:     "PREDICTION_UPSERT_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context: map[string]interface{}{
				"userid": input.UserID,
				"gameid": input.GameID,
			},
		})
		responses.InternalServerError(ctx, "שגיאה בהוספת ניחוש")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "הניחוש נשמר בהצלחה", p)
}

// ListMine godoc
// @Summary List the authenticated user's predictions
// @Tags predictions
// @Produce json
// @Success 200 {object} responses.Envelope
// @Router /predictions [get]
// @Security Bearer
func (c *PredictionController) ListMine(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}

	predictions, err := c.repo.GetByUser(userID)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", predictions)
}

// ListByGame godoc
// @Summary List all predictions for a game
// @Tags predictions
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} responses.Envelope
// @Router /admin/predictions/game/{game_id} [get]
// @Security Bearer
func (c *PredictionController) ListByGame(ctx *gin.Context) {
	gameID, err := strconv.ParseUint(ctx.Param("game_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משחק לא תקין")
		return
	}

	predictions, err := c.repo.GetByGame(uint(gameID))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", predictions)
}

// ListByUser godoc
// @Summary List all predictions of a user
// @Tags predictions
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.Envelope
// @Router /admin/predictions/user/{user_id} [get]
// @Security Bearer
func (c *PredictionController) ListByUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משתמש לא תקין")
		return
	}

	predictions, err := c.repo.GetByUser(uint(userID))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", predictions)
}

// Delete godoc
// @Summary Delete a prediction
// @Tags predictions
// @Produce json
// @Param prediction_id path int true "Prediction ID"
// @Success 200 {object} responses.Envelope
// @Router /admin/predictions/{prediction_id} [delete]
// @Security Bearer
func (c *PredictionController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("prediction_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה ניחוש לא תקין")
		return
	}

	if err := c.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(ctx, "הניחוש לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "הניחוש נמחק בהצלחה", nil)
}
