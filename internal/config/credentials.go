package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/hy4ri/backoffice-tui/internal/logger"
)

// TokenEnv overrides any stored token.
const TokenEnv = "BACKOFFICE_TOKEN"

const (
	keyringService = appName
	keyringUser    = "access-token"
	credFileName   = ".credentials"
)

// DataDir returns the directory for the credentials file, creating it with
// 0700 permissions. Uses XDG_DATA_HOME or ~/.local/share.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

func credentialsPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credFileName), nil
}

// GetToken returns the stored access token, or "" when there is none.
// Lookup order: TokenEnv, the OS keyring, the credentials file.
func GetToken() (string, error) {
	if token := strings.TrimSpace(os.Getenv(TokenEnv)); token != "" {
		return token, nil
	}

	token, err := keyring.Get(keyringService, keyringUser)
	switch {
	case err == nil && strings.TrimSpace(token) != "":
		return strings.TrimSpace(token), nil
	case err != nil && !errors.Is(err, keyring.ErrNotFound):
		logger.Debug("keyring unavailable, trying credentials file", "err", err)
	}

	path, err := credentialsPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveToken stores token in the keyring, or in a 0600 credentials file when
// no keyring is available.
func SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token cannot be empty")
	}

	kerr := keyring.Set(keyringService, keyringUser, token)
	if kerr == nil {
		return nil
	}
	logger.Warn("keyring write failed, storing token in file", "err", kerr)

	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

// ClearToken removes the token from the keyring and the credentials file.
func ClearToken() error {
	if err := keyring.Delete(keyringService, keyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("keyring delete failed", "err", err)
	}

	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}
	return nil
}

// HasToken reports whether any source yields a token.
func HasToken() bool {
	token, _ := GetToken()
	return token != ""
}
