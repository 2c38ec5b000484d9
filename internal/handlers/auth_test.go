package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/synergyspace/idea-api/internal/auth"
	"github.com/synergyspace/idea-api/internal/database"
	"github.com/synergyspace/idea-api/internal/dto"
	"github.com/synergyspace/idea-api/internal/middleware"
	"github.com/synergyspace/idea-api/internal/models"
	"github.com/synergyspace/idea-api/internal/repository"
	"github.com/synergyspace/idea-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
	tokens      *auth.TokenManager
	router      *gin.Engine
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Idea{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	tokens := auth.NewTokenManager([]byte("test-secret"), "test-issuer", "test-audience", time.Hour)
	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService, tokens)

	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.GET("/auth/test_auth", middleware.RequireAuth(tokens), handler.TestAuth)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
		tokens:      tokens,
		router:      r,
	}
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"login":        "newuser",
		"passwordHash": "supersecret",
	}

	w := postJSON(t, env.router, "/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser", response.Username)
	require.NotEmpty(t, response.UserID)
	require.NotEmpty(t, response.Token)

	// Token claims round back to the registered identity.
	principal, err := env.tokens.Validate(response.Token)
	require.NoError(t, err)
	require.Equal(t, "newuser", principal.Username)
	require.Equal(t, response.UserID, principal.UserID.String())
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"login":        "taken",
		"passwordHash": "supersecret",
	}

	w := postJSON(t, env.router, "/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, env.router, "/auth/register", payload)
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("username = ?", "taken").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAuthHandler_Register_MissingPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/auth/register", map[string]string{"login": "nopass"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestAuthHandler_Register_BlankLogin(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/auth/register", map[string]string{
		"login":        "   ",
		"passwordHash": "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		Login:    "existing",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/auth/login", map[string]string{
		"login":        "existing",
		"passwordHash": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	principal, err := env.tokens.Validate(response.Token)
	require.NoError(t, err)
	require.Equal(t, user.Username, principal.Username)
	require.Equal(t, user.ID, principal.UserID)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Login:    "existing",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/auth/login", map[string]string{
		"login":        "existing",
		"passwordHash": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/auth/login", map[string]string{
		"login":        "ghost",
		"passwordHash": "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_TestAuth(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		Login:    "greeted",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := env.tokens.Issue(user.Username, user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/test_auth", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Hello greeted")
	require.Contains(t, w.Body.String(), user.ID.String())
}

func TestAuthHandler_TestAuth_NoToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/test_auth", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
