package api

import (
	"fmt"
	"net/url"
)

// GetUsers returns all users, following pagination cursors.
func (c *Client) GetUsers() ([]User, error) {
	users, err := getList[User](c, "/users", nil)
	if err != nil {
		return users, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user by ID.
func (c *Client) GetUser(id string) (*User, error) {
	var user User
	if err := c.Get("/users/"+url.PathEscape(id), &user); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return &user, nil
}

// UpdateUser updates an existing user.
func (c *Client) UpdateUser(id string, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.Put("/users/"+url.PathEscape(id), req, &user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return &user, nil
}

// SetUserBlocked blocks or unblocks a user account.
func (c *Client) SetUserBlocked(id string, blocked bool) error {
	body := map[string]bool{"blocked": blocked}
	if err := c.Post("/users/"+url.PathEscape(id)+"/block", body, nil); err != nil {
		return fmt.Errorf("failed to set blocked=%t on user %s: %w", blocked, id, err)
	}
	return nil
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(id string) error {
	if err := c.Delete("/users/" + url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}
