package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appidentity "github.com/emprendia/backend/internal/application/identity"
	"github.com/emprendia/backend/internal/domain/identity"
	"github.com/emprendia/backend/internal/infrastructure/auth"
	"github.com/emprendia/backend/internal/infrastructure/config"
	"github.com/emprendia/backend/internal/infrastructure/persistence"
	"github.com/emprendia/backend/internal/interfaces/http/dto"
	"github.com/emprendia/backend/internal/interfaces/http/middleware"
	"github.com/emprendia/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupAuthRouter wires the auth endpoints with real JWT middleware so the
// whole signup, login, refresh and logout cycle can run against sqlite.
func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&identity.Tenant{}, &identity.User{}))

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "auth-handler-test-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "test",
		MaxRefreshCount:        10,
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	authService := appidentity.NewAuthService(
		persistence.NewGormIdentityTransactionScope(db),
		persistence.NewGormUserRepository(db),
		jwtService,
		blacklist,
		nil,
	)

	engine := gin.New()
	engine.Use(middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/signup",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
	}))

	router.New(engine).Register(NewAuthHandler(authService)).Setup()
	return engine
}

func signupBody() map[string]interface{} {
	return map[string]interface{}{
		"business_name": "Jabones Luna",
		"owner_name":    "Ana",
		"email":         "ana@example.com",
		"password":      "s3cret-pass",
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("creates the account and returns tokens", func(t *testing.T) {
		engine := setupAuthRouter(t)

		w := postJSON(t, engine, "/api/v1/auth/signup", signupBody())

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.NotEmpty(t, data["tenant_id"])
		tokens := data["tokens"].(map[string]interface{})
		assert.NotEmpty(t, tokens["access_token"])
		assert.NotEmpty(t, tokens["refresh_token"])
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		engine := setupAuthRouter(t)

		w := postJSON(t, engine, "/api/v1/auth/signup", signupBody())
		require.Equal(t, http.StatusCreated, w.Code)

		w = postJSON(t, engine, "/api/v1/auth/signup", signupBody())
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		engine := setupAuthRouter(t)

		body := signupBody()
		body["password"] = "short"
		w := postJSON(t, engine, "/api/v1/auth/signup", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	engine := setupAuthRouter(t)
	w := postJSON(t, engine, "/api/v1/auth/signup", signupBody())
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("returns tokens for valid credentials", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/login", map[string]interface{}{
			"email":    "ana@example.com",
			"password": "s3cret-pass",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns 401 for a wrong password", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/login", map[string]interface{}{
			"email":    "ana@example.com",
			"password": "wrong-pass",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
	})

	t.Run("returns 401 for an unknown email", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/login", map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "whatever1",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	engine := setupAuthRouter(t)

	w := postJSON(t, engine, "/api/v1/auth/signup", signupBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	tokens := created.Data.(map[string]interface{})["tokens"].(map[string]interface{})
	accessToken := tokens["access_token"].(string)
	refreshToken := tokens["refresh_token"].(string)

	t.Run("refresh issues a new pair", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/refresh", map[string]interface{}{
			"refresh_token": refreshToken,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		fresh := resp.Data.(map[string]interface{})
		assert.NotEmpty(t, fresh["access_token"])
	})

	t.Run("refresh rejects garbage", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/auth/refresh", map[string]interface{}{
			"refresh_token": "not-a-token",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout revokes the access token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)

		// the same token is rejected afterwards
		req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		w = httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
	})
}
