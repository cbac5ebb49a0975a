package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pathway-infinity/pathway-api/config"
	"github.com/pathway-infinity/pathway-api/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func fakeCatalog(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"records": []map[string]any{
				{"id": "recBuild", "fields": map[string]any{
					"Name":       "Summit Trades Institute",
					"Industries": []any{"Construction", "Outdoor"},
					"Pathway":    []any{"Apprenticeship"},
					"Cost":       "$4,500",
					"Location":   "Denver, CO",
				}},
				{"id": "recCare", "fields": map[string]any{
					"Name":       "Harbor Health College",
					"Industries": []any{"Healthcare"},
					"Location":   "Portland, OR",
				}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	catalog := fakeCatalog(t)
	mr := miniredis.RunT(t)

	cfg := &config.Config{
		Server:   config.Server{Port: "0", GinMode: gin.TestMode, AllowedOrigins: []string{"http://localhost:3000"}},
		Database: config.Database{Driver: "sqlite", SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared"},
		Session:  config.Session{Secret: "e2e-secret", TTL: time.Hour},
		LLM:      config.LLM{Provider: "openai"},
		Airtable: config.Airtable{APIKey: "key", BaseID: "appX", TableName: "Schools", View: "Grid view", BaseURL: catalog.URL, Timeout: 5 * time.Second},
		Redis:    config.Redis{Addr: mr.Addr()},
	}

	var router *gin.Engine
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg),
		appModule,
		fx.Invoke(AutoMigrateDB),
		fx.Populate(&router),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)
	return router
}

type client struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (c *client) call(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			c.cookie = ck
		}
	}
	return w
}

func TestQuizToSavedResultFlow(t *testing.T) {
	c := &client{t: t, router: newTestApp(t)}

	w := c.call(http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = c.call(http.MethodGet, "/api/quiz/questions", "")
	require.Equal(t, http.StatusOK, w.Code)

	answers := `{"1":"outdoor","2":"hands_on","3":"practical","4":"stability","5":"low_tech","6":"short_term"}`
	w = c.call(http.MethodPost, "/api/quiz/recommend", `{"answers":`+answers+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rec struct {
		Matches  []map[string]any `json:"matches"`
		Analysis string           `json:"analysis"`
		Source   string           `json:"source"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "fallback", rec.Source)
	assert.NotEmpty(t, rec.Analysis)
	require.NotEmpty(t, rec.Matches)
	assert.Equal(t, "Summit Trades Institute", rec.Matches[0]["name"])

	w = c.call(http.MethodPost, "/api/quiz/save", `{"results":`+w.Body.String()+`}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.call(http.MethodPost, "/api/auth/signup", `{"name":"Jo","email":"jo@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = c.call(http.MethodPost, "/api/auth/login", `{"email":"jo@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, c.cookie)

	raw, err := json.Marshal(map[string]any{"analysis": rec.Analysis, "matches": []any{}})
	require.NoError(t, err)
	payload := string(raw)
	w = c.call(http.MethodPost, "/api/quiz/save", `{"results":`+payload+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var saved struct {
		ID      string          `json:"id"`
		Results json.RawMessage `json:"results"`
		User    struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.JSONEq(t, payload, string(saved.Results))
	assert.Equal(t, "Jo", saved.User.Name)

	w = c.call(http.MethodGet, "/api/quiz/save", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = c.call(http.MethodGet, "/api/quiz/save/"+saved.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = c.call(http.MethodDelete, "/api/quiz/save/"+saved.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = c.call(http.MethodGet, "/api/quiz/save/"+saved.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	session := c.cookie
	w = c.call(http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	c.cookie = session
	w = c.call(http.MethodGet, "/api/auth/session", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOtherUsersCannotReadResults(t *testing.T) {
	router := newTestApp(t)
	owner := &client{t: t, router: router}
	intruder := &client{t: t, router: router}

	for _, u := range []struct {
		c     *client
		email string
	}{{owner, "owner@example.com"}, {intruder, "intruder@example.com"}} {
		w := u.c.call(http.MethodPost, "/api/auth/signup", `{"name":"U","email":"`+u.email+`","password":"password123"}`)
		require.Equal(t, http.StatusOK, w.Code)
		w = u.c.call(http.MethodPost, "/api/auth/login", `{"email":"`+u.email+`","password":"password123"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := owner.call(http.MethodPost, "/api/quiz/save", `{"results":{"analysis":"mine"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	var saved struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))

	w = intruder.call(http.MethodGet, "/api/quiz/save/"+saved.ID, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = intruder.call(http.MethodDelete, "/api/quiz/save/"+saved.ID, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = owner.call(http.MethodGet, "/api/quiz/save/"+saved.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsAndSwaggerMounted(t *testing.T) {
	router := newTestApp(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pathway_http_requests_total")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/quiz/recommend")
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "pathway.db"))
	t.Setenv("SESSION_SECRET", "migrate-secret")
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate"})
	require.NoError(t, cmd.Execute())
}
