package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/hy4ri/backoffice-tui/internal/api"
	"github.com/hy4ri/backoffice-tui/internal/config"
)

func setup(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("BACKOFFICE_TOKEN", "")
	t.Setenv(PasswordEnv, "")
	keyring.MockInit()
}

func loginServer(t *testing.T, logins *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			*logins++
			var req api.LoginRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Password != "hunter2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(api.LoginResponse{Token: "issued"})
		case "/auth/me":
			if r.Header.Get("Authorization") != "Bearer issued" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(api.User{ID: "1", Name: "Ops"})
		}
	}))
}

func TestGetAccessTokenPriority(t *testing.T) {
	setup(t)
	logins := 0
	server := loginServer(t, &logins)
	defer server.Close()
	client := api.NewClient(server.URL, "")

	cfg := config.DefaultConfig()
	cfg.Auth.APIToken = "from-config"
	if err := config.SaveToken("from-store"); err != nil {
		t.Fatalf("failed to seed token: %v", err)
	}

	token, err := GetAccessToken(cfg, client)
	if err != nil || token != "from-config" {
		t.Fatalf("expected config token, got %q (%v)", token, err)
	}

	cfg.Auth.APIToken = ""
	token, err = GetAccessToken(cfg, client)
	if err != nil || token != "from-store" {
		t.Fatalf("expected stored token, got %q (%v)", token, err)
	}
	if logins != 0 {
		t.Errorf("expected no login calls, got %d", logins)
	}
}

func TestGetAccessTokenLogin(t *testing.T) {
	setup(t)
	logins := 0
	server := loginServer(t, &logins)
	defer server.Close()
	client := api.NewClient(server.URL, "")

	cfg := config.DefaultConfig()
	cfg.Auth.Email = "ops@example.com"
	t.Setenv(PasswordEnv, "hunter2")

	token, err := GetAccessToken(cfg, client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "issued" {
		t.Errorf("expected issued token, got %q", token)
	}

	stored, _ := config.GetToken()
	if stored != "issued" {
		t.Errorf("expected login token to be stored, got %q", stored)
	}

	user, err := CurrentUser(client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Ops" {
		t.Errorf("expected Ops, got %q", user.Name)
	}
}

func TestGetAccessTokenLoginRejected(t *testing.T) {
	setup(t)
	logins := 0
	server := loginServer(t, &logins)
	defer server.Close()

	cfg := config.DefaultConfig()
	cfg.Auth.Email = "ops@example.com"
	t.Setenv(PasswordEnv, "wrong")

	_, err := GetAccessToken(cfg, api.NewClient(server.URL, ""))
	apiErr, ok := api.IsAPIError(err)
	if !ok || !apiErr.IsUnauthorized() {
		t.Fatalf("expected unauthorized API error, got %v", err)
	}
}

func TestGetAccessTokenNoCredentials(t *testing.T) {
	setup(t)

	cfg := config.DefaultConfig()
	cfg.Auth.Email = "ops@example.com"

	_, err := GetAccessToken(cfg, api.NewClient("http://127.0.0.1:0", ""))
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}
