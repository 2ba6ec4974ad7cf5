// Package auth resolves the access token used against the back-office API.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hy4ri/backoffice-tui/internal/api"
	"github.com/hy4ri/backoffice-tui/internal/config"
	"github.com/hy4ri/backoffice-tui/internal/logger"
)

// PasswordEnv names the variable holding the login password.
const PasswordEnv = "BACKOFFICE_PASSWORD"

// ErrNoCredentials is returned when no token source is configured.
var ErrNoCredentials = errors.New(
	"no authentication configured. Please either:\n" +
		"  1. Run with --set-token <token> to store an admin token, or\n" +
		"  2. Set BACKOFFICE_TOKEN, or\n" +
		"  3. Add 'auth.email' to ~/.config/backoffice-tui/config.yaml and export " + PasswordEnv,
)

// GetAccessToken retrieves a valid access token.
// Priority: config api_token, stored credential, then an email/password login.
// A token obtained by login is stored for later runs. On success the client
// is switched to the returned token.
func GetAccessToken(cfg *config.Config, client *api.Client) (string, error) {
	if token := strings.TrimSpace(cfg.Auth.APIToken); token != "" {
		client.SetToken(token)
		return token, nil
	}

	token, err := config.GetToken()
	if err != nil {
		logger.Warn("failed to read stored token", "err", err)
	}
	if token != "" {
		client.SetToken(token)
		return token, nil
	}

	password := os.Getenv(PasswordEnv)
	if cfg.Auth.Email == "" || password == "" {
		return "", ErrNoCredentials
	}

	resp, err := client.Login(cfg.Auth.Email, password)
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	client.SetToken(resp.Token)

	if err := config.SaveToken(resp.Token); err != nil {
		// Non-fatal: the session still works, the next run logs in again.
		logger.Warn("failed to store token", "err", err)
	}
	logger.Info("logged in", "email", cfg.Auth.Email)

	return resp.Token, nil
}

// CurrentUser fetches the identity behind the client's token.
func CurrentUser(client *api.Client) (*api.User, error) {
	user, err := client.Me()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return user, nil
}
