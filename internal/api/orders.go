package api

import (
	"fmt"
	"net/url"
)

// GetOrders returns all orders.
func (c *Client) GetOrders() ([]Order, error) {
	orders, err := getList[Order](c, "/orders", nil)
	if err != nil {
		return orders, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to status.
func (c *Client) UpdateOrderStatus(id, status string) (*Order, error) {
	if status == "" {
		return nil, fmt.Errorf("status cannot be empty")
	}

	var order Order
	body := map[string]string{"status": status}
	if err := c.Put("/orders/"+url.PathEscape(id)+"/status", body, &order); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}
	return &order, nil
}

// DeleteOrder deletes an order.
func (c *Client) DeleteOrder(id string) error {
	if err := c.Delete("/orders/" + url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}
