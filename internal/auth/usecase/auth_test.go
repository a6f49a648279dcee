package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud-srv/internal/audit"
	"cloud-srv/internal/auth"
	"cloud-srv/internal/auth/repository"
	"cloud-srv/internal/model"
	pkgJWT "cloud-srv/pkg/jwt"
	"cloud-srv/pkg/log"
	"cloud-srv/pkg/password"
)

type fakeRepo struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]model.User)}
}

func (r *fakeRepo) CreateUser(_ context.Context, opt repository.CreateUserOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[opt.Login]; ok {
		return model.User{}, repository.ErrAlreadyExists
	}
	user := model.User{
		ID:           opt.Login + "-id",
		Login:        opt.Login,
		PasswordHash: opt.PasswordHash,
		Role:         opt.Role,
		CreatedAt:    time.Now(),
	}
	r.users[opt.Login] = user
	return user, nil
}

func (r *fakeRepo) GetUserByLogin(_ context.Context, login string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[login]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return user, nil
}

func newTestUseCase(t *testing.T) (auth.UseCase, *fakeRepo, pkgJWT.IManager) {
	t.Helper()

	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	jwtManager, err := pkgJWT.New(pkgJWT.Config{Secret: secret, Issuer: "cloud-storage", TTL: time.Minute})
	if err != nil {
		t.Fatalf("jwt.New failed: %v", err)
	}

	logger := log.Init(log.ZapConfig{Level: "error"})
	repo := newFakeRepo()
	uc := New(logger, repo, jwtManager, audit.New(logger, nil))
	return uc, repo, jwtManager
}

func TestRegisterThenLogin(t *testing.T) {
	uc, _, jwtManager := newTestUseCase(t)
	ctx := context.Background()

	if err := uc.Register(ctx, auth.RegisterInput{Login: "alice", Password: "pw1", Role: model.RoleUser}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	out, err := uc.Login(ctx, auth.LoginInput{Login: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if out.Token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := jwtManager.Parse(out.Token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("subject mismatch: got %q", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "USER" {
		t.Errorf("roles mismatch: got %v", claims.Roles)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	if err := uc.Register(ctx, auth.RegisterInput{Login: "alice", Password: "pw1", Role: model.RoleUser}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := uc.Login(ctx, auth.LoginInput{Login: "alice", Password: "wrong"})
	if !errors.Is(err, auth.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Login(context.Background(), auth.LoginInput{Login: "bob", Password: "anything"})
	if !errors.Is(err, auth.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRegisterDuplicateLogin(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	if err := uc.Register(ctx, auth.RegisterInput{Login: "alice", Password: "pw1", Role: model.RoleUser}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	err := uc.Register(ctx, auth.RegisterInput{Login: "alice", Password: "pw2", Role: model.RoleUser})
	if !errors.Is(err, auth.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestRegisterStoresBcryptHash(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	ctx := context.Background()

	if err := uc.Register(ctx, auth.RegisterInput{Login: "alice", Password: "pw1", Role: model.RoleUser}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := repo.GetUserByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByLogin failed: %v", err)
	}
	if user.PasswordHash == "pw1" {
		t.Fatal("password stored in plaintext")
	}
	if err := password.Compare(user.PasswordHash, "pw1"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}
