package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"cloud-srv/internal/auth"
	"cloud-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type fakeUseCase struct {
	loginFn    func(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error)
	registerFn func(ctx context.Context, input auth.RegisterInput) error
}

func (f *fakeUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	return f.loginFn(ctx, input)
}

func (f *fakeUseCase) Register(ctx context.Context, input auth.RegisterInput) error {
	return f.registerFn(ctx, input)
}

func newTestRouter(uc auth.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := log.Init(log.ZapConfig{Level: "error"})
	h := New(logger, uc)
	r := gin.New()
	MapAuthRoutes(r.Group("/cloud"), h)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(nethttp.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	t.Run("success returns token under auth-token key", func(t *testing.T) {
		uc := &fakeUseCase{
			loginFn: func(_ context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
				if input.Login != "alice" || input.Password != "pw1" {
					t.Errorf("unexpected input: %+v", input)
				}
				return auth.LoginOutput{Token: "signed-token"}, nil
			},
		}
		w := postJSON(t, newTestRouter(uc), "/cloud/login", map[string]string{"login": "alice", "password": "pw1"})
		if w.Code != nethttp.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["auth-token"] != "signed-token" {
			t.Errorf("token mismatch: got %q", body["auth-token"])
		}
	})

	t.Run("unknown user maps to 400 USER_NOT_FOUND", func(t *testing.T) {
		uc := &fakeUseCase{
			loginFn: func(context.Context, auth.LoginInput) (auth.LoginOutput, error) {
				return auth.LoginOutput{}, auth.ErrUserNotFound
			},
		}
		w := postJSON(t, newTestRouter(uc), "/cloud/login", map[string]string{"login": "bob", "password": "x"})
		if w.Code != nethttp.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["code"] != "USER_NOT_FOUND" || body["message"] != "User not found" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("wrong password maps to 400 BAD_CREDENTIALS", func(t *testing.T) {
		uc := &fakeUseCase{
			loginFn: func(context.Context, auth.LoginInput) (auth.LoginOutput, error) {
				return auth.LoginOutput{}, auth.ErrBadCredentials
			},
		}
		w := postJSON(t, newTestRouter(uc), "/cloud/login", map[string]string{"login": "alice", "password": "x"})
		if w.Code != nethttp.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["message"] != "Bad credentials" {
			t.Errorf("unexpected message: %q", body["message"])
		}
	})

	t.Run("missing fields map to 400 VALIDATION_ERROR", func(t *testing.T) {
		uc := &fakeUseCase{
			loginFn: func(context.Context, auth.LoginInput) (auth.LoginOutput, error) {
				t.Fatal("usecase must not be reached")
				return auth.LoginOutput{}, nil
			},
		}
		w := postJSON(t, newTestRouter(uc), "/cloud/login", map[string]string{"login": "alice"})
		if w.Code != nethttp.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["code"] != "VALIDATION_ERROR" {
			t.Errorf("unexpected code: %q", body["code"])
		}
	})

	t.Run("unexpected error maps to 500 INTERNAL_ERROR", func(t *testing.T) {
		uc := &fakeUseCase{
			loginFn: func(context.Context, auth.LoginInput) (auth.LoginOutput, error) {
				return auth.LoginOutput{}, errors.New("db gone")
			},
		}
		w := postJSON(t, newTestRouter(uc), "/cloud/login", map[string]string{"login": "alice", "password": "pw1"})
		if w.Code != nethttp.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success returns empty 200 and forces USER role", func(t *testing.T) {
		var got auth.RegisterInput
		uc := &fakeUseCase{
			registerFn: func(_ context.Context, input auth.RegisterInput) error {
				got = input
				return nil
			},
		}
		w := postJSON(t, newTestRouter(uc), "/cloud/register", map[string]string{"login": "alice", "password": "pw1", "role": "ADMIN"})
		if w.Code != nethttp.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if w.Body.Len() != 0 {
			t.Errorf("expected empty body, got %q", w.Body.String())
		}
		if got.Role != "USER" {
			t.Errorf("expected forced USER role, got %q", got.Role)
		}
	})

	t.Run("duplicate login maps to 400 USER_EXISTS", func(t *testing.T) {
		uc := &fakeUseCase{
			registerFn: func(context.Context, auth.RegisterInput) error {
				return auth.ErrUserAlreadyExists
			},
		}
		w := postJSON(t, newTestRouter(uc), "/cloud/register", map[string]string{"login": "alice", "password": "pw1"})
		if w.Code != nethttp.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["code"] != "USER_EXISTS" {
			t.Errorf("unexpected code: %q", body["code"])
		}
	})
}

func TestLogoutHandler(t *testing.T) {
	uc := &fakeUseCase{}
	w := postJSON(t, newTestRouter(uc), "/cloud/logout", nil)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}
