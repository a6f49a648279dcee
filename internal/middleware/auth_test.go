package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgJWT "cloud-srv/pkg/jwt"
	"cloud-srv/pkg/log"
	"cloud-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const tokenHeader = "auth-token"

func newTestRouter(t *testing.T) (*gin.Engine, pkgJWT.IManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	jwtManager, err := pkgJWT.New(pkgJWT.Config{Secret: secret, Issuer: "cloud-storage", TTL: time.Minute})
	if err != nil {
		t.Fatalf("jwt.New failed: %v", err)
	}

	logger := log.Init(log.ZapConfig{Level: "error"})
	mw := New(logger, jwtManager, tokenHeader)

	r := gin.New()
	r.POST("/cloud/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	protected := r.Group("/cloud")
	protected.Use(mw.Auth())
	protected.GET("/list", func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"username": sc.Username})
	})

	return r, jwtManager
}

func TestAuthMiddleware(t *testing.T) {
	r, jwtManager := newTestRouter(t)

	t.Run("public path bypasses filter even with garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cloud/login", nil)
		req.Header.Set(tokenHeader, "garbage")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing token short-circuits with 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cloud/list", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["code"] != "UNAUTHORIZED" {
			t.Errorf("code mismatch: got %q", body["code"])
		}
	})

	t.Run("invalid token short-circuits with 401 and uniform message", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cloud/list", nil)
		req.Header.Set(tokenHeader, "not.a.token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["message"] != "Invalid or expired token" {
			t.Errorf("message mismatch: got %q", body["message"])
		}
	})

	t.Run("valid token via custom header installs scope", func(t *testing.T) {
		token, err := jwtManager.GenerateAccessToken("alice", []string{"USER"})
		if err != nil {
			t.Fatalf("GenerateAccessToken failed: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/cloud/list", nil)
		req.Header.Set(tokenHeader, token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["username"] != "alice" {
			t.Errorf("username mismatch: got %q", body["username"])
		}
	})

	t.Run("valid token via bearer header installs scope", func(t *testing.T) {
		token, err := jwtManager.GenerateAccessToken("bob", []string{"USER"})
		if err != nil {
			t.Fatalf("GenerateAccessToken failed: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/cloud/list", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
