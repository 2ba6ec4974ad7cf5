package api

import (
	"fmt"
	"net/url"
)

// GetRestaurants returns all restaurants.
func (c *Client) GetRestaurants() ([]Restaurant, error) {
	restaurants, err := getList[Restaurant](c, "/restaurants", nil)
	if err != nil {
		return restaurants, fmt.Errorf("failed to get restaurants: %w", err)
	}
	return restaurants, nil
}

// UpdateRestaurant updates an existing restaurant.
func (c *Client) UpdateRestaurant(id string, req UpdateRestaurantRequest) (*Restaurant, error) {
	var restaurant Restaurant
	if err := c.Put("/restaurants/"+url.PathEscape(id), req, &restaurant); err != nil {
		return nil, fmt.Errorf("failed to update restaurant %s: %w", id, err)
	}
	return &restaurant, nil
}

// SetRestaurantApproved approves or suspends a restaurant listing.
func (c *Client) SetRestaurantApproved(id string, approved bool) error {
	body := map[string]bool{"approved": approved}
	if err := c.Post("/restaurants/"+url.PathEscape(id)+"/approve", body, nil); err != nil {
		return fmt.Errorf("failed to set approved=%t on restaurant %s: %w", approved, id, err)
	}
	return nil
}

// DeleteRestaurant deletes a restaurant.
func (c *Client) DeleteRestaurant(id string) error {
	if err := c.Delete("/restaurants/" + url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete restaurant %s: %w", id, err)
	}
	return nil
}
