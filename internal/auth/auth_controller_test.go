package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goalpool/config"
	"goalpool/internal/errorlog"
	"goalpool/internal/user"
	"goalpool/pkg/responses"
)

func setupController(t *testing.T) (*AuthController, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &errorlog.ErrorLog{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.JWT.AccessTokenSecret = "test-secret"
	cfg.JWT.AccessTokenExpiryMinutes = 60

	ctrl := NewAuthController(user.NewUserRepository(db), cfg, errorlog.NewService(db, log))
	return ctrl, db
}

func performLogin(t *testing.T, ctrl *AuthController, playercode string) (*httptest.ResponseRecorder, responses.Envelope) {
	t.Helper()
	r := gin.New()
	r.POST("/auth/login", ctrl.Login)

	body, err := json.Marshal(LoginRequest{PlayerCode: playercode})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env responses.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestLoginActiveUser(t *testing.T) {
	ctrl, db := setupController(t)
	require.NoError(t, db.Create(&user.User{
		Name: "דני לוי", PlayerCode: "12345678", Status: user.StatusActive, Role: "user",
	}).Error)

	w, env := performLogin(t, ctrl, "12345678")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	payload, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	require.NotEmpty(t, payload["access_token"])
}

func TestLoginBlockedUserRejected(t *testing.T) {
	ctrl, db := setupController(t)
	require.NoError(t, db.Create(&user.User{
		Name: "חסום", PlayerCode: "87654321", Status: user.StatusBlocked, Role: "user",
	}).Error)

	w, env := performLogin(t, ctrl, "87654321")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.False(t, env.Success)
	require.Equal(t, "המשתמש חסום", env.Message)
	require.Empty(t, env.Data)
}

func TestLoginUnknownPlayerCode(t *testing.T) {
	ctrl, _ := setupController(t)

	w, env := performLogin(t, ctrl, "99999999")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, env.Success)
}
