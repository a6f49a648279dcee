package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloud-srv/pkg/authsrv"
	"cloud-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type fakeClient struct {
	loginFn    func(ctx context.Context, creds authsrv.Credentials) (authsrv.Result, error)
	registerFn func(ctx context.Context, creds authsrv.Credentials) (authsrv.Result, error)
	logoutFn   func(ctx context.Context) (authsrv.Result, error)
}

func (f *fakeClient) Login(ctx context.Context, creds authsrv.Credentials) (authsrv.Result, error) {
	return f.loginFn(ctx, creds)
}

func (f *fakeClient) Register(ctx context.Context, creds authsrv.Credentials) (authsrv.Result, error) {
	return f.registerFn(ctx, creds)
}

func (f *fakeClient) Logout(ctx context.Context) (authsrv.Result, error) {
	return f.logoutFn(ctx)
}

func newTestRouter(client authsrv.IAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := log.Init(log.ZapConfig{Level: "error"})
	h := New(logger, client)
	r := gin.New()
	MapAuthProxyRoutes(r.Group("/cloud"), h)
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProxyRelaysStatusAndBody(t *testing.T) {
	client := &fakeClient{
		loginFn: func(_ context.Context, creds authsrv.Credentials) (authsrv.Result, error) {
			if creds.Login != "alice" {
				t.Errorf("unexpected credentials: %+v", creds)
			}
			return authsrv.Result{Status: nethttp.StatusOK, Body: []byte(`{"auth-token":"tok"}`)}, nil
		},
	}
	w := post(t, newTestRouter(client), "/cloud/login", `{"login":"alice","password":"pw1"}`)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"auth-token":"tok"}` {
		t.Errorf("body not relayed verbatim: %q", w.Body.String())
	}
}

func TestProxyRelaysUpstream400(t *testing.T) {
	client := &fakeClient{
		loginFn: func(context.Context, authsrv.Credentials) (authsrv.Result, error) {
			return authsrv.Result{
				Status: nethttp.StatusBadRequest,
				Body:   []byte(`{"code":"BAD_CREDENTIALS","message":"Bad credentials"}`),
			}, nil
		},
	}
	w := post(t, newTestRouter(client), "/cloud/login", `{"login":"alice","password":"x"}`)
	if w.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["code"] != "BAD_CREDENTIALS" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestProxyUnavailableMapsTo503(t *testing.T) {
	client := &fakeClient{
		registerFn: func(context.Context, authsrv.Credentials) (authsrv.Result, error) {
			return authsrv.Result{}, authsrv.ErrUnavailable
		},
	}
	w := post(t, newTestRouter(client), "/cloud/register", `{"login":"alice","password":"pw1"}`)
	if w.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["code"] != "AUTH_SERVICE_UNAVAILABLE" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestProxyLogout(t *testing.T) {
	client := &fakeClient{
		logoutFn: func(context.Context) (authsrv.Result, error) {
			return authsrv.Result{Status: nethttp.StatusOK}, nil
		},
	}
	w := post(t, newTestRouter(client), "/cloud/logout", "")
	if w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
