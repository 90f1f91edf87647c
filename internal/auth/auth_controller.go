package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"goalpool/config"
	"goalpool/internal/errorlog"
	"goalpool/internal/permission"
	"goalpool/internal/user"
	"goalpool/pkg/responses"
	"goalpool/pkg/token"
	"goalpool/pkg/validation"
	"goalpool/utils"
)

// AuthController handles login and admin-mode requests.
type AuthController struct {
	users  user.UserRepository
	cfg    *config.Config
	errSvc *errorlog.Service
}

// NewAuthController creates a new auth controller.
func NewAuthController(users user.UserRepository, cfg *config.Config, errSvc *errorlog.Service) *AuthController {
	return &AuthController{users: users, cfg: cfg, errSvc: errSvc}
}

func (c *AuthController) issueToken(ctx *gin.Context, u *user.User) {
	accessToken, err := token.GenerateJWT(
		u.ID, string(u.Role),
		c.cfg.JWT.AccessTokenSecret,
		c.cfg.JWT.AccessTokenExpiryMinutes,
	)
	if err != nil {
		c.errSvc.Handle(errorlog.AppError{
			Code:     "AUTH_TOKEN_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"user_id": u.ID},
		})
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "התחברת בהצלחה", AuthResponse{
		AccessToken: accessToken,
		User:        *u,
	})
}

// Login godoc
// @Summary Player login by playercode
// @Description The 8-9 digit playercode is the credential. Blocked users
// @Description are rejected.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Playercode"
// @Success 200 {object} responses.Envelope
// @Failure 401 {object} responses.Envelope
// @Failure 403 {object} responses.Envelope "User is blocked"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	u, err := c.users.GetByPlayerCode(req.PlayerCode)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			responses.Unauthorized(ctx, "קוד שחקן לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	if u.Blocked() {
		responses.Forbidden(ctx, "המשתמש חסום")
		return
	}

	c.issueToken(ctx, u)
}

// AdminLogin godoc
// @Summary Admin-mode login
// @Description Admin and super-admin accounts confirm a password on top of
// @Description their playercode.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body AdminLoginRequest true "Playercode and password"
// @Success 200 {object} responses.Envelope
// @Failure 401 {object} responses.Envelope
// @Failure 403 {object} responses.Envelope
// @Router /auth/admin-login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	u, err := c.users.GetByPlayerCode(req.PlayerCode)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			responses.Unauthorized(ctx, "קוד שחקן לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}

	if u.Blocked() {
		responses.Forbidden(ctx, "המשתמש חסום")
		return
	}
	if u.Role != permission.RoleAdmin && u.Role != permission.RoleSuperAdmin {
		responses.Forbidden(ctx, "המשתמש אינו מנהל")
		return
	}
	if u.PasswordHash == "" || !utils.CheckPassword(u.PasswordHash, req.Password) {
		responses.Unauthorized(ctx, "סיסמה שגויה")
		return
	}

	c.issueToken(ctx, u)
}

// Register godoc
// @Summary Self-registration
// @Description Creates a plain user account. Role and status inputs are
// @Description ignored here; only an admin grants those.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body validation.UserInput true "User details"
// @Success 201 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope
// @Failure 409 {object} responses.Envelope "Playercode already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var input validation.UserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	// Self-registration never grants a role or pre-sets a status.
	input.Role = ""
	input.Status = ""

	result := validation.ValidateUser(input)
	if !result.Success {
		responses.SendValidationErrors(ctx, "שגיאה בתיקוף נתונים", result.Errors)
		return
	}

	u := &user.User{
		Name:       input.Name,
		PlayerCode: input.PlayerCode,
		Email:      input.Email,
		Phone:      input.Phone,
		City:       input.City,
		Role:       permission.RoleUser,
		Status:     user.StatusActive,
	}

	if err := c.users.Create(u); err != nil {
		if errors.Is(err, user.ErrDuplicatePlayerCode) {
			responses.Conflict(ctx, "קוד שחקן כבר קיים במערכת")
			return
		}
		c.errSvc.Handle(errorlog.AppError{
			Code:     "AUTH_REGISTER_ERROR",
			Message:  err.Error(),
			Severity: errorlog.SeverityError,
			Context:  map[string]interface{}{"playercode": input.PlayerCode},
		})
		responses.InternalServerError(ctx, "שגיאה ברישום משתמש")
		return
	}

	responses.SendSuccess(ctx, http.StatusCreated, "נרשמת בהצלחה", u)
}

// SetPassword godoc
// @Summary Assign an admin account its password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SetPasswordRequest true "User and new password"
// @Success 200 {object} responses.Envelope
// @Router /admin/auth/set-password [post]
// @Security Bearer
func (c *AuthController) SetPassword(ctx *gin.Context) {
	var req SetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	u, err := c.users.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			responses.NotFound(ctx, "המשתמש לא נמצא")
			return
		}
		responses.InternalServerError(ctx, "")
		return
	}
	if u.Role != permission.RoleAdmin && u.Role != permission.RoleSuperAdmin {
		responses.BadRequest(ctx, "ניתן להגדיר סיסמה רק לחשבון מנהל")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	u.PasswordHash = hash

	if err := c.users.Update(u); err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "הסיסמה עודכנה בהצלחה", nil)
}
