package service

import (
	"errors"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/repository"
	"language_tutor_backend/internal/util"
	"testing"
	"time"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	return NewAuthService(repository.NewUserRepository(newTestDB(t)), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newAuthService(t)

	registered, err := s.Register(RegisterRequest{Name: "Ana", Email: "Ana@Example.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.Token == "" {
		t.Error("Register returned empty token")
	}
	if registered.User.Email != "ana@example.com" {
		t.Errorf("email = %q, want normalised", registered.User.Email)
	}

	claims, err := util.ParseJWT(registered.Token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != registered.User.ID {
		t.Errorf("claims user = %d, want %d", claims.UserID, registered.User.ID)
	}

	loggedIn, err := s.Login(LoginRequest{Email: "ana@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.User.ID != registered.User.ID {
		t.Errorf("login user = %d, want %d", loggedIn.User.ID, registered.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newAuthService(t)
	req := RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"}
	if _, err := s.Register(req); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := s.Register(req); !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("second Register error = %v, want ErrEmailRegistered", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	s := newAuthService(t)
	if _, err := s.Register(RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name string
		req  LoginRequest
	}{
		{"wrong password", LoginRequest{Email: "ana@example.com", Password: "nope"}},
		{"unknown email", LoginRequest{Email: "bob@example.com", Password: "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Login(tt.req); !errors.Is(err, util.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestFindUserMissing(t *testing.T) {
	s := newAuthService(t)
	if _, err := s.FindUser(404); !util.IsNotFound(err) {
		t.Errorf("FindUser() error = %v, want not found", err)
	}
}
