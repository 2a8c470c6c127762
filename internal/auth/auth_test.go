package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Strapcalc/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv() *Authenv {
	return &Authenv{JWTkey: []byte("test-key"), Repo: repo.NewMemoryRepository()}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", cookieName)
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	env := newEnv()

	rec := httptest.NewRecorder()
	env.RegisterHandler(rec, httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"login":" rigger ","email":"rigger@example.com","password":"secret1"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionCookie(t, rec)

	rec = httptest.NewRecorder()
	env.RegisterHandler(rec, httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"login":"rigger","email":"x@example.com","password":"secret1"}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	env.AuthHandler(rec, httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"login":"rigger","password":"secret1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)

	id, login, ok := env.parseToken(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, "rigger", login)
}

func TestLogin_Rejected(t *testing.T) {
	env := newEnv()
	_, err := env.Repo.CreateUser(t.Context(), "rigger", "r@example.com", mustHash(t, "secret1"))
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"wrong password", `{"login":"rigger","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"login":"ghost","password":"secret1"}`, http.StatusUnauthorized},
		{"missing fields", `{"login":""}`, http.StatusBadRequest},
		{"bad json", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.AuthHandler(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body)))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	rec := httptest.NewRecorder()
	newEnv().RegisterHandler(rec, httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"login":"a","email":"a@example.com","password":"123"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	env := newEnv()
	var gotID int
	h := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserID(r.Context())
	}))

	token, err := env.signToken(42, "rigger")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/user/history", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, gotID)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/history", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := &Authenv{JWTkey: []byte("other-key")}
	forged, err := other.signToken(42, "rigger")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/user/history", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: forged})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserID_Missing(t *testing.T) {
	_, ok := UserID(t.Context())
	assert.False(t, ok)
}

func TestLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)
	h := limiter.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:" + string(rune('1'+i)) + "000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := HashPassword(password)
	require.NoError(t, err)
	return h
}
