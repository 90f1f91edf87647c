package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goalpool/internal/errorlog"
	"goalpool/internal/permission"
	"goalpool/pkg/responses"
	"goalpool/pkg/validation"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	repo   UserRepository
	errSvc *errorlog.Service
}

// NewUserController creates a new user controller.
func NewUserController(repo UserRepository, errSvc *errorlog.Service) *UserController {
	return &UserController{repo: repo, errSvc: errSvc}
}

// CreateUser godoc
// @Summary Create a new user
// @Description Create a pool participant. Playercode must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param user body validation.UserInput true "User information"
// @Success 201 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope "Validation errors"
// @Failure 409 {object} responses.Envelope "Playercode already exists"
// @Router /admin/users [post]
// @Security Bearer
func (c *UserController) CreateUser(ctx *gin.Context) {
	var input validation.UserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	result := validation.ValidateUser(input)
	if !result.Success {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", result.Errors)
		return
	}

	role := permission.RoleUser
	if input.Role != "" {
		role = permission.Role(input.Role)
	}
	status := StatusActive
	if input.Status != "" {
		status = Status(input.Status)
	}

	u := &User{
		Name:       input.Name,
		PlayerCode: input.PlayerCode,
		Email:      input.Email,
		Phone:      input.Phone,
		City:       input.City,
		Role:       role,
		Status:     status,
	}

	if err := c.repo.Create(u); err != nil {
		if errors.Is(err, ErrDuplicatePlayerCode) {
			responses.Conflict(ctx, "קוד שחקן כבר קיים במערכת")
			return
		}
		c.errSvc.Handle(errorlog.AppError{
			Code:     "USER_CREATE_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"playercode": input.PlayerCode},
		})
		responses.InternalServerError(ctx, "שגיאה בהוספת משתמש")
		return
	}

	responses.SendSuccess(ctx, http.StatusCreated, "המשתמש נוסף בהצלחה", u)
}

// GetUser godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.Envelope
// @Failure 404 {object} responses.Envelope
// @Router /users/{user_id} [get]
// @Security Bearer
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משתמש לא תקין")
		return
	}

	u, err := c.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(ctx, "המשתמש לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", u)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} responses.Envelope
// @Router /admin/users [get]
// @Security Bearer
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := c.repo.GetAll(page, limit)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param user body validation.UserInput true "Updated user information"
// @Success 200 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope
// @Failure 409 {object} responses.Envelope
// @Router /admin/users/{user_id} [put]
// @Security Bearer
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משתמש לא תקין")
		return
	}

	var input validation.UserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	result := validation.ValidateUser(input)
	if !result.Success {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", result.Errors)
		return
	}

	u, err := c.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(ctx, "המשתמש לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	u.Name = input.Name
	u.PlayerCode = input.PlayerCode
	u.Email = input.Email
	u.Phone = input.Phone
	u.City = input.City
	if input.Role != "" {
		u.Role = permission.Role(input.Role)
	}
	if input.Status != "" {
		u.Status = Status(input.Status)
	}

	if err := c.repo.Update(u); err != nil {
		if errors.Is(err, ErrDuplicatePlayerCode) {
			responses.Conflict(ctx, "קוד שחקן כבר קיים במערכת")
			return
		}
		c.errSvc.Handle(errorlog.AppError{
			Code:     "USER_UPDATE_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"user_id": id},
		})
		responses.InternalServerError(ctx, "שגיאה בעדכון משתמש")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "המשתמש עודכן בהצלחה", u)
}

// SetStatus godoc
// @Summary Block or unblock a user
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.Envelope
// @Router /admin/users/{user_id}/status [put]
// @Security Bearer
func (c *UserController) SetStatus(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משתמש לא תקין")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	if body.Status != string(StatusActive) && body.Status != string(StatusBlocked) {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", map[string]string{
			"status": "סטטוס לא תקין",
		})
		return
	}

	if err := c.repo.UpdateStatus(uint(id), Status(body.Status)); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(ctx, "המשתמש לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "סטטוס המשתמש עודכן", nil)
}

// DeleteUser godoc
// @Summary Delete a user and all their predictions
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.Envelope
// @Failure 404 {object} responses.Envelope
// @Router /admin/users/{user_id} [delete]
// @Security Bearer
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "מזהה משתמש לא תקין")
		return
	}

	if err := c.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(ctx, "המשתמש לא נמצא")
			return
		}
		c.errSvc.Handle(errorlog.AppError{
			Code:     "USER_DELETE_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"user_id": id},
		})
		responses.InternalServerError(ctx, "שגיאה במחיקת משתמש")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "המשתמש נמחק בהצלחה", nil)
}

// Leaderboard godoc
// @Summary Points leaderboard
// @Description Active users ordered by total, weekly or monthly points.
// @Tags users
// @Produce json
// @Param by query string false "Ordering: total | weekly | monthly"
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {object} responses.Envelope
// @Router /leaderboard [get]
func (c *UserController) Leaderboard(ctx *gin.Context) {
	by := ctx.DefaultQuery("by", "total")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	users, err := c.repo.Leaderboard(by, limit)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "", users)
}

// ResetPoints godoc
// @Summary Reset weekly or monthly points for all users
// @Tags users
// @Produce json
// @Param scope query string true "weekly | monthly"
// @Success 200 {object} responses.Envelope
// @Router /admin/users/reset-points [post]
// @Security Bearer
func (c *UserController) ResetPoints(ctx *gin.Context) {
	var err error
	switch ctx.Query("scope") {
	case "weekly":
		err = c.repo.ResetWeeklyPoints()
	case "monthly":
		err = c.repo.ResetMonthlyPoints()
	default:
		responses.BadRequest(ctx, "scope חייב להיות weekly או monthly")
		return
	}

	if err != nil {
		c.errSvc.Handle(errorlog.AppError{
			Code:     "USER_RESET_POINTS_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
		})
		responses.InternalServerError(ctx, "שגיאה באיפוס נקודות")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "הנקודות אופסו בהצלחה", nil)
}
