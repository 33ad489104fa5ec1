package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chalee-api/internal/application/dto"
	"chalee-api/internal/config"
	"chalee-api/internal/middleware"
	"chalee-api/internal/presentation/handlers"
	"chalee-api/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGitHub serves the two upstream endpoints the proxy calls
func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", fmt.Sprintf(`<%s/users/octocat/repos?page=3>; rel="next", <%s/users/octocat/repos?page=1>; rel="prev"`,
			"http://"+r.Host, "http://"+r.Host))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":1,"name":"hello","full_name":"octocat/hello","stargazers_count":7,"created_at":"2020-01-01T00:00:00Z","updated_at":"2021-01-01T00:00:00Z"}]`)
	})
	mux.HandleFunc("/users/ghost/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	mux.HandleFunc("/users/limited/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"API rate limit exceeded"}`)
	})
	mux.HandleFunc("/users/broken/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("/repos/octocat/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1,"name":"hello","full_name":"octocat/hello","language":"Go"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestConfig(githubURL string) *config.Config {
	return &config.Config{
		Environment: config.EnvDevelopment,
		Server:      config.ServerConfig{Host: "127.0.0.1", Port: "0"},
		Database: config.DatabaseConfig{
			Driver:         config.DriverMemory,
			ConnectTimeout: time.Second,
		},
		GitHub: config.GitHubConfig{BaseURL: githubURL, Timeout: 5 * time.Second},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *server.App {
	t.Helper()
	app, err := server.New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, newTestConfig(fakeGitHub(t).URL))

	w := do(t, app.Router, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[dto.HealthResponse](t, w)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, config.EnvDevelopment, body.Environment)
	assert.Equal(t, handlers.DatabaseInMemory, body.Database)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestPostLifecycle(t *testing.T) {
	app := newTestApp(t, newTestConfig(fakeGitHub(t).URL))
	r := app.Router

	w := do(t, r, http.MethodPost, "/api/posts", `{"title":"Hello","content":"Body","slug":"Hello   World"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.PostResponse](t, w)
	assert.Equal(t, "hello-world", created.Slug)
	assert.False(t, created.Published)

	w = do(t, r, http.MethodPost, "/api/posts", `{"title":"Again","content":"Body","slug":"hello world"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/api/posts/slug/hello-world", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decode[dto.PostResponse](t, w).ID)

	path := fmt.Sprintf("/api/posts/%d", created.ID)

	w = do(t, r, http.MethodPatch, path+"/publish", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.PostResponse](t, w).Published)

	w = do(t, r, http.MethodPatch, path+"/unpublish", "")
	require.Equal(t, http.StatusOK, w.Code)
	unpublished := decode[dto.PostResponse](t, w)
	assert.False(t, unpublished.Published)
	assert.Equal(t, created.Title, unpublished.Title)
	assert.Equal(t, created.Content, unpublished.Content)

	w = do(t, r, http.MethodPut, path, `{"title":"Renamed","slug":"New Slug"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[dto.PostResponse](t, w)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "new-slug", updated.Slug)
	assert.Equal(t, "Body", updated.Content)

	w = do(t, r, http.MethodGet, "/api/posts?search=renamed&limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.PostListResponse](t, w)
	require.Len(t, list.Posts, 1)
	assert.Equal(t, int64(1), list.Pagination.Total)
	assert.Equal(t, 5, list.Pagination.Limit)
	assert.Equal(t, 1, list.Pagination.TotalPages)

	w = do(t, r, http.MethodGet, "/api/posts/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[dto.PostStatsResponse](t, w)
	assert.Equal(t, int64(1), stats.Stats.Total)
	assert.Equal(t, int64(0), stats.Stats.Published)
	assert.Len(t, stats.RecentPosts, 1)

	w = do(t, r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostErrors(t *testing.T) {
	app := newTestApp(t, newTestConfig(fakeGitHub(t).URL))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantText   string
	}{
		{"missing id", http.MethodGet, "/api/posts/999999", "", http.StatusNotFound, "999999"},
		{"missing slug", http.MethodGet, "/api/posts/slug/nothing-here", "", http.StatusNotFound, "nothing-here"},
		{"non numeric id", http.MethodGet, "/api/posts/abc", "", http.StatusBadRequest, "numeric string is expected"},
		{"unknown query key", http.MethodGet, "/api/posts?foo=1", "", http.StatusBadRequest, "property foo should not exist"},
		{"limit over max", http.MethodGet, "/api/posts?limit=101", "", http.StatusBadRequest, ""},
		{"bad sort field", http.MethodGet, "/api/posts?sortBy=slug", "", http.StatusBadRequest, ""},
		{"bad published flag", http.MethodGet, "/api/posts?published=maybe", "", http.StatusBadRequest, ""},
		{"unknown body field", http.MethodPost, "/api/posts", `{"title":"t","content":"c","slug":"s","author":"x"}`, http.StatusBadRequest, ""},
		{"missing title", http.MethodPost, "/api/posts", `{"content":"c","slug":"s"}`, http.StatusBadRequest, ""},
		{"summary too long", http.MethodPost, "/api/posts", `{"title":"t","content":"c","slug":"s","summary":"` + strings.Repeat("x", 501) + `"}`, http.StatusBadRequest, ""},
		{"update missing", http.MethodPut, "/api/posts/42", `{"title":"t"}`, http.StatusNotFound, "42"},
		{"publish missing", http.MethodPatch, "/api/posts/42/publish", "", http.StatusNotFound, "42"},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound, "Cannot GET /api/nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, app.Router, tt.method, tt.path, tt.body)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			body := decode[handlers.ErrorResponse](t, w)
			assert.Equal(t, tt.wantStatus, body.StatusCode)
			assert.NotEmpty(t, body.RequestID)
			if tt.wantText != "" {
				assert.Contains(t, body.Message, tt.wantText)
			}
		})
	}
}

func TestGitHubProxy(t *testing.T) {
	app := newTestApp(t, newTestConfig(fakeGitHub(t).URL))

	t.Run("list", func(t *testing.T) {
		w := do(t, app.Router, http.MethodGet, "/api/github/users/octocat/repos?per_page=1&page=2", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[dto.RepositoryListResponse](t, w)
		require.Len(t, body.Repos, 1)
		assert.Equal(t, "octocat/hello", body.Repos[0].FullName)
		assert.Equal(t, 7, body.Repos[0].StargazersCount)
		assert.Nil(t, body.Repos[0].PushedAt)
		assert.Equal(t, 1, body.TotalCount)
		assert.Equal(t, 2, body.Page)
		assert.Equal(t, 1, body.PerPage)
		assert.True(t, body.HasNext)
		assert.True(t, body.HasPrev)
	})

	t.Run("get", func(t *testing.T) {
		w := do(t, app.Router, http.MethodGet, "/api/github/repos/octocat/hello", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[dto.RepositoryResponse](t, w)
		require.NotNil(t, body.Language)
		assert.Equal(t, "Go", *body.Language)
	})

	errorCases := []struct {
		name       string
		path       string
		wantStatus int
		wantText   string
	}{
		{"per_page over max", "/api/github/users/octocat/repos?per_page=150", http.StatusBadRequest, ""},
		{"unknown sort", "/api/github/users/octocat/repos?sort=stars", http.StatusBadRequest, ""},
		{"unknown query key", "/api/github/users/octocat/repos?q=go", http.StatusBadRequest, "property q should not exist"},
		{"user not found", "/api/github/users/ghost/repos", http.StatusNotFound, "ghost"},
		{"repository not found", "/api/github/repos/octocat/missing", http.StatusNotFound, "octocat/missing"},
		{"rate limited", "/api/github/users/limited/repos", http.StatusTooManyRequests, ""},
		{"upstream failure", "/api/github/users/broken/repos", http.StatusInternalServerError, ""},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, app.Router, http.MethodGet, tt.path, "")

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			body := decode[handlers.ErrorResponse](t, w)
			if tt.wantText != "" {
				assert.Contains(t, body.Message, tt.wantText)
			}
		})
	}
}

func TestSwaggerOnlyOutsideProduction(t *testing.T) {
	upstream := fakeGitHub(t)

	dev := newTestApp(t, newTestConfig(upstream.URL))
	w := do(t, dev.Router, http.MethodGet, "/api/docs/doc.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/posts/{id}/publish")

	cfg := newTestConfig(upstream.URL)
	cfg.Environment = config.EnvProduction
	prod := newTestApp(t, cfg)
	w = do(t, prod.Router, http.MethodGet, "/api/docs/doc.json", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	gin.SetMode(gin.TestMode)
}

func TestCORSReflectsOrigin(t *testing.T) {
	app := newTestApp(t, newTestConfig(fakeGitHub(t).URL))

	req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	req.Header.Set("Origin", "http://frontend.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://frontend.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	app := newTestApp(t, newTestConfig(fakeGitHub(t).URL))

	req := httptest.NewRequest(http.MethodGet, "/api/posts/999999", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "req-123", decode[handlers.ErrorResponse](t, w).RequestID)
}

func TestListPosts_PageBeyondAddressableRange(t *testing.T) {
	app := newTestApp(t, newTestConfig(fakeGitHub(t).URL))

	w := do(t, app.Router, http.MethodPost, "/api/posts", `{"title":"Only","content":"Body","slug":"only"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, app.Router, http.MethodGet, "/api/posts?page=9223372036854775807", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	list := decode[dto.PostListResponse](t, w)
	assert.Empty(t, list.Posts)
	assert.Equal(t, int64(1), list.Pagination.Total)
	assert.Equal(t, 9223372036854775807, list.Pagination.Page)
	assert.False(t, list.Pagination.HasNext)
	assert.True(t, list.Pagination.HasPrev)
}

func TestGetPostBySlug_NormalizesLookupKey(t *testing.T) {
	app := newTestApp(t, newTestConfig(fakeGitHub(t).URL))

	w := do(t, app.Router, http.MethodPost, "/api/posts", `{"title":"Hello","content":"Body","slug":"hello-world"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, app.Router, http.MethodGet, "/api/posts/slug/Hello%20World", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "hello-world", decode[dto.PostResponse](t, w).Slug)
}
