package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	config "Strapcalc/internal/config"
	logging "Strapcalc/internal/logging"
	repo "Strapcalc/internal/repo"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{
		TokenKey:  "test-key",
		RateLimit: 1000,
		RateBurst: 1000,
		Log:       logging.DefaultConfig(),
	}
	r := mux.NewRouter()
	HandleList(r, cfg, repo.NewMemoryRepository())
	return CORS(r)
}

func do(h http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCORS_Preflight(t *testing.T) {
	rec := do(newTestServer(t), http.MethodOptions, "/api/tools/securing/calc", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestPublicRoutes(t *testing.T) {
	h := newTestServer(t)

	rec := do(h, http.MethodPost, "/api/tools/securing/calc",
		`{"cargo":{"region":"europe","weight":1000,"weight_unit":"kg","length":3,"dimension_unit":"m"},"method":"indirect","angle":90}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(logging.RequestIDHeader))

	rec = do(h, http.MethodGet, "/api/tools/securing/regions", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/tools/securing/units?region=north_america", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lbs")

	rec = do(h, http.MethodPost, "/api/tools/cbm/calc",
		`{"unit":"m","items":[{"length":1,"width":1,"height":1,"quantity":2}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/tools/securing/calc", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUserRoutes_RequireSession(t *testing.T) {
	h := newTestServer(t)

	rec := do(h, http.MethodGet, "/api/user/history", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodPost, "/api/register",
		`{"login":"rigger","email":"rigger@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = do(h, http.MethodPost, "/api/user/history",
		`{"name":"coil","kind":"securing","input":{"cargo":{"region":"australia","weight":2000,"weight_unit":"kg","length":5,"dimension_unit":"m"},"method":"direct"}}`,
		cookies...)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(h, http.MethodGet, "/api/user/history", "", cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"coil"`)

	rec = do(h, http.MethodGet, "/api/user/history/1", "", cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodPost, "/api/user/tools/securing/sweep",
		`{"cargo":{"region":"europe","weight":1000,"weight_unit":"kg","length":3,"dimension_unit":"m"}}`,
		cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)
}
