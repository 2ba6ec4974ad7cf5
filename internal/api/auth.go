package api

import "fmt"

// Login exchanges credentials for an access token.
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.Post("/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("failed to log in: empty token in response")
	}
	return &resp, nil
}

// Me returns the account the current token belongs to.
func (c *Client) Me() (*User, error) {
	var user User
	if err := c.Get("/auth/me", &user); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &user, nil
}
