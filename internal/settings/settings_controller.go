package settings

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"goalpool/internal/errorlog"
	"goalpool/pkg/responses"
	"goalpool/pkg/validation"
)

// SettingsController handles the global system settings.
type SettingsController struct {
	repo       SettingsRepository
	errSvc     *errorlog.Service
	cronAPIKey string
}

// NewSettingsController creates a new settings controller.
func NewSettingsController(repo SettingsRepository, errSvc *errorlog.Service, cronAPIKey string) *SettingsController {
	return &SettingsController{repo: repo, errSvc: errSvc, cronAPIKey: cronAPIKey}
}

// Get godoc
// @Summary Get the global system settings
// @Tags system
// @Produce json
// @Success 200 {object} responses.Envelope
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	s, err := c.repo.Get()
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "", s)
}

// Update godoc
// @Summary Update the current day and week
// @Tags system
// @Accept json
// @Produce json
// @Success 200 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope
// @Router /admin/settings [put]
// @Security Bearer
func (c *SettingsController) Update(ctx *gin.Context) {
	var body struct {
		CurrentDay string `json:"currentday"`
		Week       int    `json:"week"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	errs := make(map[string]string)
	if !validation.IsDayName(body.CurrentDay) {
		errs["currentday"] = "יום לא תקין"
	}
	if body.Week < 1 || body.Week > 38 {
		errs["week"] = "מספר שבוע חייב להיות מספר חיובי"
	}
	if len(errs) > 0 {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", errs)
		return
	}

	if err := c.repo.Update(body.CurrentDay, body.Week); err != nil {
		c.errSvc.Handle(errorlog.AppError{
			Code:     "SETTINGS_UPDATE_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"currentday": body.CurrentDay, "week": body.Week},
		})
		responses.InternalServerError(ctx, "שגיאה בעדכון ההגדרות")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "ההגדרות עודכנו בהצלחה", nil)
}

// CronUpdateDay godoc
// @Summary Roll the current day forward from the wall clock
// @Description Called by an external scheduler. Guarded by CRON_API_KEY
// @Description rather than a user token.
// @Tags system
// @Produce json
// @Param api_key query string true "Cron API key"
// @Success 200 {object} responses.Envelope
// @Failure 401 {object} responses.Envelope
// @Router /cron/update-day [get]
func (c *SettingsController) CronUpdateDay(ctx *gin.Context) {
	key := ctx.Query("api_key")
	if c.cronAPIKey == "" ||
		subtle.ConstantTimeCompare([]byte(key), []byte(c.cronAPIKey)) != 1 {
		responses.Unauthorized(ctx, "Unauthorized")
		return
	}

	updated, err := c.repo.RollDay(time.Now())
	if err != nil {
		c.errSvc.Handle(errorlog.AppError{
			Code:     "CRON_UPDATE_DAY_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
		})
		responses.InternalServerError(ctx, "שגיאה בעדכון היום הנוכחי")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Current day updated successfully", gin.H{
		"updated": updated,
	})
}

// ErrorLogs godoc
// @Summary Recent application error logs
// @Tags system
// @Produce json
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {object} responses.Envelope
// @Router /admin/error-logs [get]
// @Security Bearer
func (c *SettingsController) ErrorLogs(ctx *gin.Context) {
	logs, err := c.errSvc.Recent(50)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "", logs)
}
