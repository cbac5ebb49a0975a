package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pathway-infinity/pathway-api/config"
	"github.com/pathway-infinity/pathway-api/database"
	"github.com/pathway-infinity/pathway-api/internal/middleware"
	"github.com/pathway-infinity/pathway-api/internal/repository"
	"github.com/pathway-infinity/pathway-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := database.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Session: config.Session{Secret: "test-secret", TTL: 2 * time.Hour},
		Redis:   config.Redis{Addr: mr.Addr()},
	}
	rdb, err := database.NewRedis(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	tokens := service.NewTokenService(cfg, repository.NewRevokedTokenRepository(rdb))
	c := NewAuthController(service.NewAuthService(repository.NewUserRepository(db)), tokens, cfg)

	r := gin.New()
	r.POST("/api/auth/signup", c.Signup)
	r.POST("/api/auth/login", c.Login)
	r.POST("/api/auth/logout", c.Logout)
	r.GET("/api/auth/session", middleware.RequireAuth(tokens), c.Session)
	return r
}

func post(r *gin.Engine, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", middleware.SessionCookieName)
	return nil
}

func TestSignupValidation(t *testing.T) {
	r := newAuthRouter(t)
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"email":"a@example.com","password":"longenough"}`, "Missing required fields"},
		{"bad email", `{"name":"A","email":"nope","password":"longenough"}`, "Invalid email address"},
		{"short password", `{"name":"A","email":"a@example.com","password":"short"}`, "Password must be at least 8 characters"},
		{"malformed", `{`, "Invalid request body"},
		{"password too long", `{"name":"A","email":"a@example.com","password":"` + strings.Repeat("x", 80) + `"}`, "Invalid request body"},
		{"password over 72 bytes", `{"name":"A","email":"a@example.com","password":"` + strings.Repeat("é", 40) + `"}`, "Password must be at most 72 bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, w.Body.String())
		})
	}
}

func TestSignupLoginSessionLogout(t *testing.T) {
	r := newAuthRouter(t)

	w := post(r, "/api/auth/signup", `{"name":"Ada","email":"Ada@Example.com","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"User created successfully"`)
	assert.Contains(t, w.Body.String(), `"email":"ada@example.com"`)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Empty(t, w.Result().Cookies(), "signup must not start a session")

	w = post(r, "/api/auth/signup", `{"name":"Ada","email":"ada@example.com","password":"correct horse"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email already registered"}`, w.Body.String())

	w = post(r, "/api/auth/login", `{"email":"ada@example.com","password":"wrong password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())

	w = post(r, "/api/auth/login", `{"email":"ada@example.com","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int((2 * time.Hour).Seconds()), cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookie)
	sw := httptest.NewRecorder()
	r.ServeHTTP(sw, req)
	require.Equal(t, http.StatusOK, sw.Code)
	assert.Contains(t, sw.Body.String(), `"name":"Ada"`)

	w = post(r, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, w.Body.String())
	assert.True(t, sessionCookie(t, w).MaxAge < 0)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookie)
	sw = httptest.NewRecorder()
	r.ServeHTTP(sw, req)
	assert.Equal(t, http.StatusUnauthorized, sw.Code, "revoked token must not be accepted")
}

func TestLoginMissingFields(t *testing.T) {
	r := newAuthRouter(t)
	w := post(r, "/api/auth/login", `{"email":"a@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email and password are required"}`, w.Body.String())
}

func TestLogoutWithoutSession(t *testing.T) {
	r := newAuthRouter(t)
	w := post(r, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, w.Body.String())
}
