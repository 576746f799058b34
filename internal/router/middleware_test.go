package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mxshop-next/internal/constants"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

type stubTokenParser struct {
	tokens map[string]uint
}

func (p stubTokenParser) ParseAccessToken(token string) (*service.UserJWTClaims, error) {
	id, ok := p.tokens[token]
	if !ok {
		return nil, service.ErrInvalidToken
	}
	return &service.UserJWTClaims{UserID: id, TokenType: constants.TokenTypeAccess}, nil
}

type stubUserLookup map[uint]*models.User

func (l stubUserLookup) GetByID(id uint) (*models.User, error) {
	if id == 999 {
		return nil, errors.New("db down")
	}
	return l[id], nil
}

func newAuthTestEngine(required bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	parser := stubTokenParser{tokens: map[string]uint{"good": 1, "disabled": 2, "broken": 999}}
	users := stubUserLookup{
		1: {ID: 1, Username: "13800000001", IsActive: true},
		2: {ID: 2, Username: "13800000002", IsActive: false},
	}
	r := gin.New()
	r.Use(UserAuthMiddleware(parser, users, "mxshop_session", required))
	r.GET("/me", func(c *gin.Context) {
		uid, _ := c.Get(constants.ContextKeyUserID)
		c.JSON(http.StatusOK, gin.H{"status_code": 0, "uid": uid})
	})
	return r
}

func decodeStatusCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v body=%s", err, w.Body.String())
	}
	return resp.StatusCode
}

func TestUserAuthMiddleware(t *testing.T) {
	cases := []struct {
		name     string
		required bool
		header   string
		cookie   string
		want     int
	}{
		{name: "bearer", header: "Bearer good", want: 0},
		{name: "jwt scheme", header: "JWT good", want: 0},
		{name: "session cookie", cookie: "good", want: 0},
		{name: "anonymous optional", want: 0},
		{name: "anonymous required", required: true, want: 401},
		{name: "bad scheme", header: "Token good", want: 401},
		{name: "unknown token", header: "Bearer nope", want: 401},
		{name: "disabled user", header: "Bearer disabled", want: 401},
		{name: "lookup error", header: "Bearer broken", want: 401},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newAuthTestEngine(tc.required)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "mxshop_session", Value: tc.cookie})
			}
			r.ServeHTTP(w, req)
			if got := decodeStatusCode(t, w); got != tc.want {
				t.Fatalf("status_code want %d got %d", tc.want, got)
			}
		})
	}
}

func TestUserRBACMiddlewareWithoutService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(UserRBACMiddleware(nil))
	r.GET("/goods", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/goods", nil))
	if got := decodeStatusCode(t, w); got != 401 {
		t.Fatalf("status_code want 401 got %d", got)
	}
}
