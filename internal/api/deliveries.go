package api

import (
	"fmt"
	"net/url"
)

// GetDeliveries returns all deliveries.
func (c *Client) GetDeliveries() ([]Delivery, error) {
	deliveries, err := getList[Delivery](c, "/deliveries", nil)
	if err != nil {
		return deliveries, fmt.Errorf("failed to get deliveries: %w", err)
	}
	return deliveries, nil
}

// AssignCourier assigns a courier to a delivery.
func (c *Client) AssignCourier(id, courierID string) error {
	if courierID == "" {
		return fmt.Errorf("courier ID cannot be empty")
	}
	body := map[string]string{"courier_id": courierID}
	if err := c.Post("/deliveries/"+url.PathEscape(id)+"/assign", body, nil); err != nil {
		return fmt.Errorf("failed to assign courier to delivery %s: %w", id, err)
	}
	return nil
}

// DeleteDelivery deletes a delivery.
func (c *Client) DeleteDelivery(id string) error {
	if err := c.Delete("/deliveries/" + url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete delivery %s: %w", id, err)
	}
	return nil
}
